package models

import (
	"bytes"
	"encoding/json"
)

// Column - пара "имя колонки - значение"
type Column struct {
	Name  string
	Value any
}

// Record - строка результата запроса с сохранённым порядком колонок
type Record []Column

// Get возвращает значение колонки по имени
func (r Record) Get(name string) (any, bool) {
	for _, c := range r {
		if c.Name == name {
			return c.Value, true
		}
	}
	return nil, false
}

// Names возвращает имена колонок в порядке выборки
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Name
	}
	return names
}

// MarshalJSON сериализует запись в JSON-объект, не меняя порядок ключей
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
