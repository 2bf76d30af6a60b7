// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manuscript

import (
	"math"

	"github.com/taibuivan/canon/pkg/slice"
)

// Analytics summarises a set of variants.
type Analytics struct {
	TotalVariants       int            `json:"total_variants"`
	SignificantVariants int            `json:"significant_variants"`
	AgreementPercentage float64        `json:"agreement_percentage"`
	VariantTypes        map[string]int `json:"variant_types"`
}

/*
Summarize aggregates variants, keeping only books of testament when one is
given.

Description: The agreement percentage is the mean agreement ratio times 100,
rounded to one decimal, and 0 for an empty set.
*/
func Summarize(variants []*Variant, testament Testament) Analytics {
	kept := slice.Filter(variants, func(variant *Variant) bool {
		return InTestament(variant.Book, testament)
	})

	analytics := Analytics{
		TotalVariants: len(kept),
		VariantTypes:  make(map[string]int),
	}

	ratioSum := 0.0
	for _, variant := range kept {
		if variant.Significant {
			analytics.SignificantVariants++
		}
		ratioSum += variant.AgreementRatio
		analytics.VariantTypes[string(variant.VariantType)]++
	}

	if len(kept) > 0 {
		analytics.AgreementPercentage = math.Round(ratioSum/float64(len(kept))*1000) / 10
	}

	return analytics
}
