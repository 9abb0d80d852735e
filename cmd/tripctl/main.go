// tripctl is a small terminal client for the trip planner backend: it lists
// trips and published posts, shows a post by slug and previews the images
// the UI would pick for cards and covers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/herathua/tripplanner-sub000/internal/api"
	"github.com/herathua/tripplanner-sub000/internal/auth"
	"github.com/herathua/tripplanner-sub000/internal/blog"
	"github.com/herathua/tripplanner-sub000/internal/config"
	"github.com/herathua/tripplanner-sub000/internal/image"
	"github.com/herathua/tripplanner-sub000/internal/trip"
)

var errUsage = errors.New("usage: tripctl <trips|blogs|blog|cover|card> [args]")

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	os.Exit(mainRunner(mainDepsProvider(), os.Args[1:]))
}

// services bundles the clients a command may need.
type services struct {
	trips  *trip.Service
	blogs  *blog.Service
	picker *image.Picker
}

type mainDeps struct {
	loadConfig    func() config.Config
	buildServices func(config.Config) *services
	notify        func(chan<- os.Signal, ...os.Signal)
	run           func(context.Context, *services, []string, io.Writer) error
	stdout        io.Writer
	stderr        io.Writer
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig:    config.Load,
		buildServices: buildServices,
		notify:        signal.Notify,
		run:           Run,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
}

func buildServices(cfg config.Config) *services {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	authClient := auth.NewClient(cfg.FirebaseAPIKey, cfg.HTTPTimeout, log)
	session := auth.NewSession(authClient)
	apiClient := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, log, api.WithTokenSource(session))
	images := image.NewClient(cfg.UnsplashBaseURL, cfg.UnsplashAccessKey, cfg.HTTPTimeout, log)

	return &services{
		trips:  trip.NewService(apiClient),
		blogs:  blog.NewService(apiClient),
		picker: image.NewPicker(images, log),
	}
}

func realMain(deps mainDeps, args []string) int {
	cfg := deps.loadConfig()
	svcs := deps.buildServices(cfg)

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-signals
		cancel()
	}()

	if err := deps.run(ctx, svcs, args, deps.stdout); err != nil {
		fmt.Fprintf(deps.stderr, "tripctl: %v\n", err)
		return 1
	}
	return 0
}

// Run dispatches one subcommand against the services.
func Run(ctx context.Context, svcs *services, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "trips":
		return listTrips(ctx, svcs, out)
	case "blogs":
		return listBlogs(ctx, svcs, args[1:], out)
	case "blog":
		if len(args) < 2 {
			return errors.New("usage: tripctl blog <slug>")
		}
		return showBlog(ctx, svcs, args[1], out)
	case "cover":
		if len(args) < 2 {
			return errors.New("usage: tripctl cover <title> [tag ...]")
		}
		d := svcs.picker.BlogCover(ctx, args[1], args[2:])
		fmt.Fprintf(out, "%s\n%s\n", d.URL, d.Credit)
		return nil
	case "card":
		fs := flag.NewFlagSet("card", flag.ContinueOnError)
		activity := fs.String("activity", "", "activity keyword for the card image")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return errors.New("usage: tripctl card [-activity hiking] <destination>")
		}
		d := svcs.picker.TripCard(ctx, fs.Arg(0), *activity)
		fmt.Fprintf(out, "%s\n%s\n", d.URL, d.Credit)
		return nil
	default:
		return errUsage
	}
}

func listTrips(ctx context.Context, svcs *services, out io.Writer) error {
	trips, err := svcs.trips.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDESTINATION\tDATES\tSTATUS")
	for _, t := range trips {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s..%s\t%s\n", t.ID, t.Title, t.Destination, t.StartDate, t.EndDate, t.Status)
	}
	return w.Flush()
}

func listBlogs(ctx context.Context, svcs *services, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("blogs", flag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", 10, "page size")
	query := fs.String("q", "", "search published posts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		res blog.Page
		err error
	)
	if *query != "" {
		res, err = svcs.blogs.SearchPublished(ctx, *query, *page, *size)
	} else {
		res, err = svcs.blogs.ListPublished(ctx, *page, *size)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tAUTHOR")
	for _, p := range res.Content {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.PublicSlug, p.Title, authorName(p))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "page %d of %d (%d posts)\n", res.Number+1, res.TotalPages, res.TotalElements)
	return nil
}

func showBlog(ctx context.Context, svcs *services, slug string, out io.Writer) error {
	post, err := svcs.blogs.GetBySlug(ctx, slug)
	if api.IsNotFound(err) {
		return fmt.Errorf("no published post with slug %q", slug)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\nby %s\n\n", post.Title, authorName(post))
	text := post.PlainText()
	if text == "" {
		text = "(no content)"
	}
	fmt.Fprintln(out, strings.TrimSpace(text))
	return nil
}

func authorName(p blog.BlogPost) string {
	if p.Author == nil || p.Author.DisplayName == "" {
		return "unknown"
	}
	return p.Author.DisplayName
}
