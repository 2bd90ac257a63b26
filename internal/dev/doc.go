// Package dev provides the preview server and hot reload functionality.
//
// # Architecture
//
// The preview server consists of several components:
//
//   - Watcher: polls the pages directory and crel.json for changes
//   - Server: renders page documents on request through a chi router
//   - ReloadServer: notifies browsers of changes via WebSocket
//
// Pages are rendered fresh on every request, so a saved document is visible
// on the next reload without a build step.
//
// # Routes
//
//	/               pages/index.{yaml,yml,json}
//	/{page...}      pages/{page}.{yaml,yml,json} (".html" suffix allowed)
//	/metrics        Prometheus metrics (dev.metrics)
//	/_crel/reload   live reload WebSocket (dev.hotReload)
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{Config: cfg})
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Hot Reload Protocol
//
// The browser connects to /_crel/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
package dev
