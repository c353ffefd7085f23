// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import "strings"

// fleschKincaidGrade computes the Flesch-Kincaid grade level:
// 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
// Syllables come from a vowel-group heuristic; the result is floored at 0.
func fleschKincaidGrade(text string) float64 {
	sentences := splitSentences(text)
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	grade := 0.39*(float64(len(words))/float64(len(sentences))) +
		11.8*(float64(syllables)/float64(len(words))) - 15.59
	if grade < 0 {
		return 0
	}
	return grade
}

// countSyllables estimates syllables as the number of vowel groups, with a
// silent trailing "e" discounted. Every word counts at least one.
func countSyllables(word string) int {
	count := 0
	prevVowel := false
	for _, c := range word {
		v := isVowel(c)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(c rune) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
