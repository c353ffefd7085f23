// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		_, err := Analyze(text)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	texts := []string{
		"Dear Dr. Smith,\n\nI am writing regarding the quarterly results. The performance was excellent.\n\nSincerely,\nJane",
		"hey dude, gonna grab lunch? yeah cool, awesome!",
		"Please send the report. Could you also confirm the meeting time?",
		"Short.",
		strings.Repeat("The multidisciplinary organizational infrastructure necessitates comprehensive reconsideration. ", 10),
	}

	for _, text := range texts {
		m, err := Analyze(text)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, m.FormalityScore, 0.0)
		assert.LessOrEqual(t, m.FormalityScore, 1.0)
		assert.GreaterOrEqual(t, m.SentenceComplexity, 0.0)
		assert.LessOrEqual(t, m.SentenceComplexity, 1.0)
		assert.GreaterOrEqual(t, m.VocabularySophistication, 0.0)
		assert.LessOrEqual(t, m.VocabularySophistication, 1.0)
		assert.GreaterOrEqual(t, m.DirectnessScore, 0.0)
		assert.LessOrEqual(t, m.DirectnessScore, 1.0)
		assert.GreaterOrEqual(t, m.SentimentTendency, -1.0)
		assert.LessOrEqual(t, m.SentimentTendency, 1.0)
	}
}

func TestAnalyzeFormalityOrdering(t *testing.T) {
	formal, err := Analyze("Dear Professor Williams,\n\nI am writing respectfully to request an appointment regarding the dissertation proposal. Your professional guidance would be appreciated.\n\nSincerely,\nA Student")
	require.NoError(t, err)

	casual, err := Analyze("hey! gonna be late, yeah traffic is awful. wanna just meet at the cafe? cool")
	require.NoError(t, err)

	assert.Greater(t, formal.FormalityScore, casual.FormalityScore)
}

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		sign int
	}{
		{"positive", "The results were great and the team is happy. Excellent work all around.", 1},
		{"negative", "The rollout was terrible. Everyone is frustrated and disappointed with the outcome.", -1},
		{"neutral", "The meeting is scheduled for Tuesday at three in conference room B.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Analyze(tt.text)
			require.NoError(t, err)
			switch tt.sign {
			case 1:
				assert.Greater(t, m.SentimentTendency, 0.0)
			case -1:
				assert.Less(t, m.SentimentTendency, 0.0)
			default:
				assert.Equal(t, 0.0, m.SentimentTendency)
			}
		})
	}
}

func TestAnalyzeGreetingAndSignatureExtraction(t *testing.T) {
	m, err := Analyze("Dear John,\n\nThe project milestones were reached on schedule this month.\n\nBest regards,\nAlice")
	require.NoError(t, err)

	assert.Contains(t, m.GreetingPatterns, "Dear John,")
	require.NotEmpty(t, m.SignaturePatterns)
	assert.Contains(t, m.SignaturePatterns[0], "Best regards")
}

func TestAnalyzeDirectness(t *testing.T) {
	direct, err := Analyze("Please send the invoice today. Could you confirm receipt?")
	require.NoError(t, err)

	indirect, err := Analyze("The weather has been pleasant this week. The garden is blooming nicely.")
	require.NoError(t, err)

	assert.Greater(t, direct.DirectnessScore, indirect.DirectnessScore)
}

func TestRankByFrequency(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		n      int
		want   []string
	}{
		{
			name:   "orders by count",
			values: []string{"a", "b", "b", "c", "c", "c"},
			n:      3,
			want:   []string{"c", "b", "a"},
		},
		{
			name:   "ties break by first appearance",
			values: []string{"x", "y", "x", "y"},
			n:      2,
			want:   []string{"x", "y"},
		},
		{
			name:   "truncates to n",
			values: []string{"a", "b", "c", "d"},
			n:      2,
			want:   []string{"a", "b"},
		},
		{
			name:   "empty input yields empty slice",
			values: nil,
			n:      3,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rankByFrequency(tt.values, tt.n))
		})
	}
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"beautiful", 3},
		{"a", 1},
		{"rhythm", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countSyllables(tt.word), "word %q", tt.word)
	}
}
