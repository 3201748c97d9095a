package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-testimonials/adapters/gocms"
	"github.com/goliatone/go-testimonials/pkg/commands"
	"github.com/goliatone/go-testimonials/pkg/config"
	"github.com/goliatone/go-testimonials/pkg/editor"
	"github.com/goliatone/go-testimonials/pkg/interfaces/logger"
	"github.com/goliatone/go-testimonials/pkg/options"
	"github.com/spf13/pflag"
)

func main() {
	var settingsPath, locale string
	var width int
	flagSet := pflag.NewFlagSet("gocms", pflag.ContinueOnError)
	flagSet.StringVar(&settingsPath, "settings", "", "path to a site settings file (JSON, comments allowed)")
	flagSet.StringVar(&locale, "locale", "en", "editing user's locale")
	flagSet.IntVar(&width, "excerpt-width", 80, "maximum excerpt length in characters")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		log.Fatalf("flags: %v", err)
	}

	ctx := context.Background()

	site := map[string]any{"slider": map[string]any{"group_id_prefix": "reviews-"}}
	if settingsPath != "" {
		data, err := os.ReadFile(settingsPath)
		if err != nil {
			log.Fatalf("settings: %v", err)
		}
		if site, err = options.ParseSettings(data); err != nil {
			log.Fatalf("settings: %v", err)
		}
	}

	cfg, err := config.LoadLayered(
		options.Site(site),
		options.User(map[string]any{"localization": map[string]any{"default_locale": locale}}),
	)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	module, err := editor.NewModule(ctx, editor.ModuleOptions{Config: cfg, Logger: logger.New()})
	if err != nil {
		log.Fatalf("module: %v", err)
	}
	doc, err := module.NewDocument()
	if err != nil {
		log.Fatalf("document: %v", err)
	}
	cmds, err := module.Commands(doc)
	if err != nil {
		log.Fatalf("commands: %v", err)
	}

	_, sliderName := module.BlockNames()
	block, err := doc.Insert(sliderName)
	if err != nil {
		log.Fatalf("insert slider: %v", err)
	}
	id := block.ClientID.String()

	entries := []struct{ content, author, link string }{
		{"Shipped in a week, no surprises.", "Ada", "https://example.com/ada"},
		{"Support answered at 3am & fixed it.", "Grace", ""},
	}
	for i, entry := range entries {
		if err := cmds.AddTestimonial.Execute(ctx, commands.AddTestimonial{BlockID: id}); err != nil {
			log.Fatalf("add: %v", err)
		}
		for field, value := range map[string]string{"content": entry.content, "author": entry.author, "link": entry.link} {
			if err := cmds.UpdateTestimonial.Execute(ctx, commands.UpdateTestimonial{BlockID: id, Index: i, Field: field, Value: value}); err != nil {
				log.Fatalf("update: %v", err)
			}
		}
	}

	content, err := doc.Serialize(ctx)
	if err != nil {
		log.Fatalf("serialize: %v", err)
	}
	fmt.Printf("Post content\n%s\n\n", content)

	excerpt, err := doc.Excerpt(ctx, width)
	if err != nil {
		log.Fatalf("excerpt: %v", err)
	}
	fmt.Printf("Excerpt\n%s\n\n", excerpt)

	widget, err := gocms.WidgetFromBlock(ctx, block, module.Host(), module.HostFor("es"))
	if err != nil {
		log.Fatalf("widget: %v", err)
	}
	if err := writeWidget(os.Stdout, widget); err != nil {
		log.Fatalf("widget: %v", err)
	}
}

func writeWidget(w io.Writer, widget gocms.WidgetDocument) error {
	encoded, err := json.MarshalIndent(widget.Metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("encode widget: %w", err)
	}
	_, err = fmt.Fprintf(w, "Widget %d locales\n%s\n", len(widget.Translations), encoded)
	return err
}
