package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/storefront/internal/ports"
)

// InputFormat — формат входных данных.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// FormatFor — формат по расширению пути; всё, кроме .jsonl, считается JSON.
func FormatFor(path string) InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — проверка файла с заказами; FormatAuto определяется по расширению.
func ValidateFile(ctx context.Context, validator ports.OrderValidator, path string, format InputFormat, w io.Writer) (Report, error) {
	if format == FormatAuto {
		format = FormatFor(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ValidateReader(ctx, validator, f, format, w)
}

// ValidateReader — проверка потока в заданном формате.
// JSON — один заказ (невалидный даёт ошибку) или массив заказов (невалидные попадают в отчёт).
// FormatAuto здесь означает JSONL: у потока нет расширения.
func ValidateReader(ctx context.Context, validator ports.OrderValidator, r io.Reader, format InputFormat, w io.Writer) (Report, error) {
	switch format {
	case FormatJSONL, FormatAuto:
		return ValidateStream(ctx, validator, r, w)
	case FormatJSON:
		return validateJSON(ctx, validator, r, w)
	default:
		return Report{}, fmt.Errorf("unsupported format: %s", format)
	}
}

func validateJSON(ctx context.Context, validator ports.OrderValidator, r io.Reader, w io.Writer) (Report, error) {
	var rep Report

	raw, err := io.ReadAll(r)
	if err != nil {
		return rep, fmt.Errorf("read input: %w", err)
	}

	if !isArray(raw) {
		order, err := DecodeOrder(ctx, validator, raw)
		if err != nil {
			rep.reject(1, err)
			return rep, err
		}
		rep.accept()
		return rep, writeLine(w, order)
	}

	orders, errs, err := DecodeOrders(ctx, validator, raw)
	if err != nil {
		return rep, err
	}
	for i, order := range orders {
		if errs[i] != nil {
			rep.reject(i+1, errs[i])
			continue
		}
		if err := writeLine(w, order); err != nil {
			return rep, err
		}
		rep.accept()
	}
	return rep, nil
}
