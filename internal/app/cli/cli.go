// Package cli implements the randkey command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/AlenaMolokova/randkey/internal/app"
	"github.com/AlenaMolokova/randkey/internal/app/config"
	"github.com/AlenaMolokova/randkey/internal/app/generator"
	"github.com/sirupsen/logrus"
)

var ErrUsage = errors.New("usage: randkey [flags] [ltr sbl num [unit]]")

type options struct {
	cfg     config.Config
	chars   string
	add     string
	remove  string
	clear   string
	preset  string
	save    string
	check   string
	from    string
	verbose bool
}

// Run parses args, builds a generator and writes the resulting key to out.
func Run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("randkey", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var o options
	config.Register(fs, &o.cfg)
	fs.StringVar(&o.chars, "chars", "", "Заменить пулы символов (символы, пробелы игнорируются)")
	fs.StringVar(&o.add, "add", "", "Добавить символы в пулы")
	fs.StringVar(&o.remove, "remove", "", "Удалить символы из пулов")
	fs.StringVar(&o.clear, "clear", "", "Очистить пулы: letters, symbols, digits через запятую или all")
	fs.StringVar(&o.preset, "preset", "", "Загрузить конфигурацию из пресета")
	fs.StringVar(&o.save, "save", "", "Сохранить конфигурацию как пресет")
	fs.StringVar(&o.check, "check", "", "Принять ключ, если его состав совпадает с заданным")
	fs.StringVar(&o.from, "from", "", "Сгенерировать ключ того же состава, что и текст")
	fs.BoolVar(&o.verbose, "v", false, "Печатать пулы и количества")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err := config.Apply(fs, &o.cfg); err != nil {
		return err
	}
	o.cfg.SetupLogger()

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	pos := fs.Args()
	if len(pos) != 0 && len(pos) != 3 && len(pos) != 4 {
		return ErrUsage
	}
	// A key can only be checked against counts given by the caller.
	if o.check != "" && len(pos) == 0 && o.preset == "" {
		return fmt.Errorf("%w: -check needs counts or -preset", ErrUsage)
	}

	var application *app.App
	if o.preset != "" || o.save != "" {
		a, err := app.NewApp(&o.cfg)
		if err != nil {
			return err
		}
		defer a.Close()
		application = a
	}

	demo := len(pos) == 0 && o.preset == "" && o.from == ""
	r, err := o.base(ctx, application, pos, demo)
	if err != nil {
		return err
	}

	if o.preset == "" || set["unit"] {
		if err := r.SetUnit(o.cfg.Unit); err != nil {
			return err
		}
	}
	if len(pos) == 4 {
		if err := r.SetUnit(pos[3]); err != nil {
			return err
		}
	}
	if set["workers"] || o.cfg.Workers != 0 {
		r.SetWorkers(o.cfg.Workers)
	}

	if err := o.editPools(r); err != nil {
		return err
	}

	if o.save != "" {
		p, err := application.Service.SavePreset(ctx, o.save, r)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"name": p.Name, "id": p.ID}).Debug("Preset stored from command line")
	}

	if demo || o.verbose {
		printPools(out, r)
	}

	if o.check != "" {
		if err := r.SetKey(o.check, generator.Check); err != nil {
			return err
		}
	} else if err := r.GenerateContext(ctx); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, r.Key())
	return err
}

func (o *options) base(ctx context.Context, application *app.App, pos []string, demo bool) (*generator.RandKey, error) {
	var (
		r   *generator.RandKey
		err error
	)
	switch {
	case o.from != "":
		r, err = generator.FromString(o.from)
	case o.preset != "":
		r, err = application.Service.LoadGenerator(ctx, o.preset)
	case demo:
		r, err = generator.New("0", "0", "2")
		if err == nil {
			err = r.Replace([]string{"1", "2"})
		}
	default:
		r, err = generator.New(pos[0], pos[1], pos[2])
	}
	if err != nil {
		return nil, err
	}

	// Positional counts override the preset or the sample text.
	if len(pos) >= 3 && (o.preset != "" || o.from != "") {
		for i, c := range generator.Classes() {
			if err := r.SetCount(c, pos[i]); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (o *options) editPools(r *generator.RandKey) error {
	if o.clear != "" {
		if o.clear == "all" {
			r.ClearAll()
		} else {
			for _, name := range strings.Split(o.clear, ",") {
				c, err := generator.ParseClass(strings.TrimSpace(name))
				if err != nil {
					return err
				}
				r.Clear(c)
			}
		}
	}
	// A pool may be empty until -add refills it; Generate validates the
	// final state.
	if o.chars != "" {
		if err := r.Replace(tokens(o.chars)); err != nil && !errors.Is(err, generator.ErrMissingCharacter) {
			return err
		}
	}
	if o.remove != "" {
		if err := r.Remove(tokens(o.remove)); err != nil {
			return err
		}
	}
	if o.add != "" {
		if err := r.Add(tokens(o.add)); err != nil {
			return err
		}
	}
	return nil
}

// tokens splits s into single-character tokens, skipping whitespace.
func tokens(s string) []string {
	out := make([]string, 0, len(s))
	for _, field := range strings.Fields(s) {
		for _, ch := range field {
			out = append(out, string(ch))
		}
	}
	return out
}

func printPools(out io.Writer, r *generator.RandKey) {
	for _, c := range generator.Classes() {
		fmt.Fprintf(out, "%s (%s): %s\n", c, r.Count(c), strings.Join(r.Data(c), " "))
	}
}
