package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevirov89/DataBaseBot/internal/domain"
)

func TestGameKeyboard(t *testing.T) {
	options := []domain.Word{
		{WordID: 1, EnglishWord: "Dog"},
		{WordID: 2, EnglishWord: "Cat"},
		{WordID: 3, EnglishWord: "Sun"},
		{WordID: 4, EnglishWord: "Tree"},
	}

	markup := gameKeyboard(options)

	// Two option rows of two buttons, then the menu rows
	assert.Len(t, markup.ReplyKeyboard, 4)
	assert.Len(t, markup.ReplyKeyboard[0], 2)
	assert.Len(t, markup.ReplyKeyboard[1], 2)

	var labels []string
	for _, row := range markup.ReplyKeyboard[:2] {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}
	assert.ElementsMatch(t, []string{"Dog", "Cat", "Sun", "Tree"}, labels)

	assert.Equal(t, btnNext, markup.ReplyKeyboard[2][0].Text)
	assert.Equal(t, btnAddWord, markup.ReplyKeyboard[3][0].Text)
	assert.Equal(t, btnDeleteWord, markup.ReplyKeyboard[3][1].Text)
}

func TestMainKeyboard(t *testing.T) {
	markup := mainKeyboard()

	assert.Len(t, markup.ReplyKeyboard, 3)
	assert.Equal(t, btnNext, markup.ReplyKeyboard[0][0].Text)
	assert.Equal(t, btnAddWord, markup.ReplyKeyboard[1][0].Text)
	assert.Equal(t, btnDeleteWord, markup.ReplyKeyboard[2][0].Text)
}

func TestCancelKeyboard(t *testing.T) {
	markup := cancelKeyboard()

	assert.Len(t, markup.ReplyKeyboard, 1)
	assert.Equal(t, btnCancel, markup.ReplyKeyboard[0][0].Text)
}
