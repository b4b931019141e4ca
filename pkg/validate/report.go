package validate

import "fmt"

// Rejection — отклонённая запись: номер (строка JSONL или элемент массива, с 1) и причина.
type Rejection struct {
	Index  int
	Reason string
}

// Report — итог проверки файла или потока.
type Report struct {
	Valid    int
	Invalid  int
	Rejected []Rejection
}

func (r *Report) accept() { r.Valid++ }

func (r *Report) reject(index int, err error) {
	r.Invalid++
	r.Rejected = append(r.Rejected, Rejection{Index: index, Reason: err.Error()})
}

// String — краткая сводка "N valid / M invalid".
func (r Report) String() string {
	return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid)
}
