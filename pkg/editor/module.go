// Package editor is the entry point for hosts embedding the testimonial
// blocks: it wires configuration, translation and templates, registers
// both blocks and hands out documents with their command handlers.
package editor

import (
	"context"
	"errors"

	i18n "github.com/goliatone/go-i18n"

	"github.com/goliatone/go-testimonials/internal/di"
	"github.com/goliatone/go-testimonials/pkg/blocks"
	"github.com/goliatone/go-testimonials/pkg/commands"
	"github.com/goliatone/go-testimonials/pkg/config"
	"github.com/goliatone/go-testimonials/pkg/document"
	"github.com/goliatone/go-testimonials/pkg/interfaces/logger"
)

var errModuleNotInitialized = errors.New("editor: module not initialized")

// ModuleOptions configure the editor module facade.
type ModuleOptions struct {
	Config     config.Config
	Logger     logger.Logger
	Translator i18n.Translator
	Fallbacks  i18n.FallbackResolver
}

// Module bundles the container and exposes high-level accessors.
type Module struct {
	container *di.Container
}

// NewModule assembles the host and registers the testimonial blocks.
func NewModule(ctx context.Context, opts ModuleOptions) (*Module, error) {
	container, err := di.New(ctx, di.Options{
		Config:     opts.Config,
		Logger:     opts.Logger,
		Translator: opts.Translator,
		Fallbacks:  opts.Fallbacks,
	})
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Host returns the block host in the configured default locale.
func (m *Module) Host() *blocks.Runtime {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Host
}

// HostFor returns a host rendering labels in locale.
func (m *Module) HostFor(locale string) *blocks.Runtime {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Host.WithLocale(locale)
}

// Registry returns the block registry.
func (m *Module) Registry() *blocks.Registry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Registry
}

// BlockNames returns the registered single and slider block names.
func (m *Module) BlockNames() (single, carousel string) {
	if m == nil || m.container == nil {
		return "", ""
	}
	return m.container.BlockNames()
}

// NewDocument returns an empty document bound to the default host.
func (m *Module) NewDocument() (*document.Document, error) {
	if m == nil || m.container == nil {
		return nil, errModuleNotInitialized
	}
	return document.New(m.container.Host, document.WithLogger(m.container.Logger))
}

// ParseDocument reads delimited content into a document.
func (m *Module) ParseDocument(content string) (*document.Document, error) {
	if m == nil || m.container == nil {
		return nil, errModuleNotInitialized
	}
	return document.Parse(m.container.Host, content, document.WithLogger(m.container.Logger))
}

// Commands returns the go-command handlers bound to doc.
func (m *Module) Commands(doc *document.Document) (*commands.Registry, error) {
	if m == nil || m.container == nil {
		return nil, errModuleNotInitialized
	}
	return commands.New(commands.Dependencies{
		Document: doc,
		Logger:   m.container.Logger,
	})
}

// Config returns the effective module configuration.
func (m *Module) Config() config.Config {
	if m == nil || m.container == nil {
		return config.Config{}
	}
	return m.container.Config
}

// Container returns the internal DI container.
// This is exposed for advanced use cases like direct template access.
func (m *Module) Container() *di.Container {
	if m == nil {
		return nil
	}
	return m.container
}
