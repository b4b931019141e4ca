// validate-orders — офлайн-проверка выгруженных заказов (JSON, массив JSON или JSONL).
// Валидные заказы печатаются в stdout, отклонённые с причинами в stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/storefront/pkg/validate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run — разбор флагов и проверка; возвращает код выхода.
// 0 — всё валидно, 1 — есть отклонённые записи (только с -strict) или ошибка, 2 — неверные флаги.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate-orders", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("in", "", "path to input (.json or .jsonl); stdin (JSONL) when empty")
	formatStr := fs.String("format", string(validate.FormatAuto), "input format: auto|json|jsonl")
	strict := fs.Bool("strict", false, "exit with 1 when any order is rejected")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		v      = validate.NewOrderValidator()
		format = validate.InputFormat(*formatStr)
		rep    validate.Report
		err    error
	)
	if *inputPath == "" {
		rep, err = validate.ValidateReader(ctx, v, stdin, format, stdout)
	} else {
		rep, err = validate.ValidateFile(ctx, v, *inputPath, format, stdout)
	}

	for _, r := range rep.Rejected {
		fmt.Fprintf(stderr, "rejected #%d: %s\n", r.Index, r.Reason)
	}
	if err != nil {
		fmt.Fprintf(stderr, "validation: %v (%s)\n", err, rep)
		return 1
	}
	fmt.Fprintf(stderr, "validation done (%s)\n", rep)

	if *strict && rep.Invalid > 0 {
		return 1
	}
	return 0
}
