// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package manuscript

// OldTestamentBooks lists the 39 books of the Protestant Old Testament.
var OldTestamentBooks = []string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song of Solomon", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk",
	"Zephaniah", "Haggai", "Zechariah", "Malachi",
}

// NewTestamentBooks lists the 27 books of the New Testament.
var NewTestamentBooks = []string{
	"Matthew", "Mark", "Luke", "John", "Acts",
	"Romans", "1 Corinthians", "2 Corinthians", "Galatians", "Ephesians",
	"Philippians", "Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy",
	"2 Timothy", "Titus", "Philemon", "Hebrews", "James",
	"1 Peter", "2 Peter", "1 John", "2 John", "3 John",
	"Jude", "Revelation",
}

var testamentOf = func() map[string]Testament {
	index := make(map[string]Testament, len(OldTestamentBooks)+len(NewTestamentBooks))
	for _, book := range OldTestamentBooks {
		index[book] = TestamentOld
	}
	for _, book := range NewTestamentBooks {
		index[book] = TestamentNew
	}
	return index
}()

// InTestament reports whether book belongs to testament. An empty testament
// admits every book.
func InTestament(book string, testament Testament) bool {
	return testament == "" || testamentOf[book] == testament
}
