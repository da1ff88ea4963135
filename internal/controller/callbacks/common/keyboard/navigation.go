package keyboard

import (
	"github.com/go-telegram/bot/models"
)

// BackButton создаёт кнопку "Retour"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Retour", callbackData)
}

// NextButton создаёт кнопку "Suivant"
func NextButton(callbackData string) models.InlineKeyboardButton {
	return Button("Suivant ➡️", callbackData)
}

// NavigationRow ряд Назад/Далее. Пустой callback скрывает кнопку.
func NavigationRow(backData, nextData string) []models.InlineKeyboardButton {
	var row []models.InlineKeyboardButton
	if backData != "" {
		row = append(row, BackButton(backData))
	}
	if nextData != "" {
		row = append(row, NextButton(nextData))
	}
	return row
}

// Grid раскладывает кнопки по рядам заданной ширины
func Grid(buttons []models.InlineKeyboardButton, perRow int) [][]models.InlineKeyboardButton {
	if perRow <= 0 {
		perRow = 1
	}
	rows := make([][]models.InlineKeyboardButton, 0, (len(buttons)+perRow-1)/perRow)
	for start := 0; start < len(buttons); start += perRow {
		end := start + perRow
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[start:end])
	}
	return rows
}
