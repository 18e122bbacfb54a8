package platform

import (
	"fmt"

	"github.com/aretw0/notesbridge/pkg/adapters/applescript"
	"github.com/aretw0/notesbridge/pkg/core"
	"github.com/aretw0/notesbridge/pkg/osascript"
)

// New creates a notesbridge Service.
//
//	svc, err := notesbridge.New(notesbridge.WithLogger(logger))
func New(opts ...Option) (*core.Service, error) {
	repo, err := Init(opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.logger), nil
}

// Init builds the configured core.Repository.
func Init(opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	switch o.adapter {
	case "applescript":
		return initAppleScript(o), nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnknownAdapter, o.adapter)
	}
}

// initAppleScript wires the osascript client into the applescript adapter.
func initAppleScript(o *options) core.Repository {
	exec := o.executor
	if exec == nil {
		binary, _ := o.config["binary"].(string)
		client := osascript.NewClient(binary, o.logger)
		if !client.IsInstalled() && o.logger != nil {
			o.logger.Warn("scripting bridge not found on PATH", "binary", client.Binary)
		}
		exec = client
	}

	return applescript.NewRepository(applescript.Config{
		Executor: exec,
		Logger:   o.logger,
	})
}
