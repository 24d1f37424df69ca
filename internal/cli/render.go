package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	querybuilder "github.com/biyonik/go-query-builder"
	"github.com/biyonik/go-query-builder/dialect"
	"github.com/biyonik/go-query-builder/internal/querydef"
)

const stdinPath = "-"

func newRenderCommand(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render query definition files to SQL",
		Long: `Render one SELECT statement per definition file, in argument order.
Use "-" to read a definition from stdin.`,
		Example: `  qb render users.yaml
  qb render --dialect postgres a.yaml b.json
  cat users.yaml | qb render -
  qb render --watch users.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRenderer(app)
			if err != nil {
				return err
			}

			if watch {
				if len(args) != 1 || args[0] == stdinPath {
					return errors.New("--watch needs exactly one definition file")
				}
				return r.watch(cmd.Context(), args[0])
			}

			statements, err := r.renderAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			return writeStatements(app.Stdout, statements)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render the file whenever it changes")

	return cmd
}

type renderer struct {
	app  *App
	opts []querybuilder.Option
}

func newRenderer(app *App) (*renderer, error) {
	grammar, ok := dialect.ByName(app.config.Dialect)
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (want mysql or postgres)", app.config.Dialect)
	}

	return &renderer{
		app: app,
		opts: []querybuilder.Option{
			querybuilder.WithGrammar(grammar),
			querybuilder.WithLogger(app.logger),
			querybuilder.WithStrict(app.config.Strict),
		},
	}, nil
}

// renderAll renders every path concurrently; results keep argument order.
func (r *renderer) renderAll(ctx context.Context, paths []string) ([]string, error) {
	var stdin []byte
	for _, path := range paths {
		if path == stdinPath {
			data, err := io.ReadAll(r.app.Stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			stdin = data
			break
		}
	}

	statements := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var (
				def *querydef.Definition
				err error
			)
			if path == stdinPath {
				def, err = querydef.Parse(stdin)
				if err != nil {
					err = fmt.Errorf("stdin: %w", err)
				}
			} else {
				def, err = querydef.Load(r.app.Fs, path)
			}
			if err != nil {
				return err
			}

			sql, err := r.build(path, def)
			if err != nil {
				return err
			}
			statements[i] = sql
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statements, nil
}

func (r *renderer) build(path string, def *querydef.Definition) (string, error) {
	sql, err := def.Builder(r.opts...).Build()
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	r.app.logger.Debug("rendered", slog.String("path", path))
	return sql, nil
}

func (r *renderer) watch(ctx context.Context, path string) error {
	renderOnce := func() error {
		statements, err := r.renderAll(ctx, []string{path})
		if err != nil {
			return err
		}
		printHeader(r.app.Stderr, path, time.Now())
		return writeStatements(r.app.Stdout, statements)
	}

	if err := renderOnce(); err != nil {
		return err
	}

	w, err := newWatcher(path, renderOnce, func(err error) {
		PrintError(r.app.Stderr, err)
	})
	if err != nil {
		return err
	}

	printSuccess(r.app.Stderr, "watching %s (Ctrl+C to stop)", path)
	return w.run(ctx)
}
