package api

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var apiStaticFS embed.FS

// dashboardFS holds dashboard.html, served by the /dashboard handler.
var dashboardFS fs.FS = func() fs.FS {
	sub, err := fs.Sub(apiStaticFS, "static")
	if err != nil {
		return apiStaticFS
	}
	return sub
}()
