package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// maxLineBytes — предел длины одной строки JSONL.
const maxLineBytes = 10 << 20

// ValidateStream — JSONL: каждая непустая строка — заказ. Валидные пишутся в w
// компактным JSON по одному на строку; невалидные попадают в отчёт с номером строки.
func ValidateStream(ctx context.Context, validator ports.OrderValidator, r io.Reader, w io.Writer) (Report, error) {
	var rep Report

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}

		order, err := DecodeOrder(ctx, validator, raw)
		if err != nil {
			rep.reject(line, err)
			continue
		}
		if err := writeLine(w, order); err != nil {
			return rep, err
		}
		rep.accept()
	}
	if err := scanner.Err(); err != nil {
		return rep, fmt.Errorf("scan: %w", err)
	}
	return rep, nil
}

// writeLine — заказ одной строкой JSON.
func writeLine(w io.Writer, order *domain.OrderPayload) error {
	line, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	if _, err := w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write order: %w", err)
	}
	return nil
}
