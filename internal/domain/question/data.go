package question

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

// embeddedQuestions is a compact sample of the certification bank,
// two questions per category. The full 741-question dataset is
// supplied at runtime through QUESTIONS_PATH.
//
//go:embed questions.json
var embeddedQuestions []byte

// DefaultCategories is the fixed category list of the 1C:ERP
// certification exam.
var DefaultCategories = []Category{
	{ID: 1, Name: "Общие положения, нормативно-справочная информация"},
	{ID: 2, Name: "Планирование"},
	{ID: 3, Name: "Бюджетирование"},
	{ID: 4, Name: "Работа с заказами"},
	{ID: 5, Name: "Закупки"},
	{ID: 6, Name: "Складское хозяйство"},
	{ID: 7, Name: "Продажи"},
	{ID: 8, Name: "Казначейство"},
	{ID: 9, Name: "Ведение взаиморасчетов"},
	{ID: 10, Name: "Нормирование"},
	{ID: 11, Name: "Управление производством"},
	{ID: 12, Name: "Производство"},
	{ID: 13, Name: "Оперативный учет"},
	{ID: 14, Name: "Регламентированный учет"},
}

// Load builds the question bank from the file at path, or from the
// embedded dataset when path is empty. Data errors are hard failures:
// a bank that fails validation must not start the application.
func Load(path string) (*Bank, error) {
	data := embeddedQuestions
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read question data: %w", err)
		}
	}

	var raw []RawQuestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse question data: %w", err)
	}

	bank, err := NewBank(raw, DefaultCategories)
	if err != nil {
		return nil, fmt.Errorf("build question bank: %w", err)
	}
	return bank, nil
}
