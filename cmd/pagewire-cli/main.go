package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"github.com/lmittmann/tint"

	pagewire "github.com/goliatone/go-pagewire"
	"github.com/goliatone/go-pagewire/internal/specload"
	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/form"
	"github.com/goliatone/go-pagewire/pkg/notices"
	pkgopenapi "github.com/goliatone/go-pagewire/pkg/openapi"
	"github.com/goliatone/go-pagewire/pkg/render"
	"github.com/goliatone/go-pagewire/pkg/tui"
)

func main() {
	pagePath := flag.String("page", "page.yaml", "page definition path")
	source := flag.String("source", "", "OpenAPI document path or URL supplying field checks")
	opID := flag.String("operation", "", "operation ID whose request schema supplies the checks")
	output := flag.String("output", "", "output file (stdout if empty)")
	rendererName := flag.String("renderer", "page", "renderer to use (page, text)")
	themeName := flag.String("theme", "", "theme name for the rendered page")
	variant := flag.String("variant", "", "theme variant")
	interactive := flag.Bool("interactive", false, "prompt for field values on the terminal")
	dismiss := flag.Bool("dismiss", false, "run the banner dismiss timeline before rendering")
	flag.Parse()

	ctx := context.Background()

	data, err := os.ReadFile(*pagePath)
	if err != nil {
		log.Fatalf("Failed to read page definition: %v", err)
	}
	page, err := pagewire.LoadPage(data, *pagePath)
	if err != nil {
		log.Fatalf("Failed to load page definition: %v", err)
	}
	doc, bindings, err := page.Build()
	if err != nil {
		log.Fatalf("Failed to build page: %v", err)
	}

	pagewire.Wire(doc, pagewire.WithBindings(bindings))
	doc.Ready()

	var checks []pagewire.Check
	if *source != "" {
		if *opID == "" {
			log.Fatalf("-operation is required when -source is set")
		}
		checks, err = loadChecks(ctx, *source, *opID)
		if err != nil {
			log.Fatalf("Failed to load checks: %v", err)
		}
	}

	validator := form.NewValidator(form.WithBindings(bindings))
	if *interactive {
		session := tui.NewSession(tui.NewSurveyDriver(), validator)
		if err := session.Run(ctx, doc, checks); err != nil {
			log.Fatalf("Session failed: %v", err)
		}
	} else if len(checks) > 0 {
		form.NewForm(validator, checks...).Validate(doc)
	}

	if *dismiss {
		runDismissTimeline(doc)
	}

	registry := render.NewRegistry()
	pageRenderer, err := render.New()
	if err != nil {
		log.Fatalf("Failed to configure renderer: %v", err)
	}
	registry.MustRegister(pageRenderer)
	registry.MustRegister(render.NewTextRenderer())

	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("Unknown renderer %q (have %s)", *rendererName, strings.Join(registry.List(), ", "))
	}

	options := pagewire.RenderOptions{
		Title:    page.Title,
		Bindings: bindings,
	}
	if *themeName != "" {
		options.Theme = &theme.RendererConfig{
			Theme:   *themeName,
			Variant: *variant,
		}
	}

	html, err := renderer.Render(ctx, doc, options)
	if err != nil {
		log.Fatalf("Failed to render page: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, html, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Page written to %s\n", *output)
	} else {
		fmt.Println(string(html))
	}
}

func loadChecks(ctx context.Context, source, operationID string) ([]pagewire.Check, error) {
	src := parseSource(source)
	if src == nil {
		return nil, fmt.Errorf("invalid source %q", source)
	}

	loader := specload.New(pkgopenapi.LoaderOptions{
		AllowHTTPFallback: true,
		RequestTimeout:    15 * time.Second,
	})
	document, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return pkgopenapi.Checks(ctx, document, operationID)
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}

// runDismissTimeline waits out the banner fade and removal on the wall clock,
// logging each transition as it lands.
func runDismissTimeline(doc *pagewire.Document) {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))

	banners := doc.OfKind(dom.KindMessage)
	if len(banners) == 0 {
		logger.Info("no banners to dismiss")
		return
	}
	for _, banner := range banners {
		logger.Info("banner visible", "id", banner.ID, "text", banner.Text)
	}

	time.Sleep(notices.FadeDelay + 50*time.Millisecond)
	for _, banner := range banners {
		if current, ok := doc.ByID(banner.ID); ok {
			logger.Info("banner fading", "id", current.ID, "opacity", current.Opacity, "transition", current.Transition)
		}
	}

	time.Sleep(notices.RemoveDelay + 50*time.Millisecond)
	for _, banner := range banners {
		if !doc.Contains(banner.ID) {
			logger.Info("banner removed", "id", banner.ID)
		} else {
			logger.Warn("banner still attached", "id", banner.ID)
		}
	}
}
