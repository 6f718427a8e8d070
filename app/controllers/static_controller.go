package controllers

import (
	"net/http"
	"path/filepath"
)

// StaticController serves the portal pages from a directory on disk.
// Missing files fall through to net/http's own 404.
type StaticController struct{ Dir string }

func NewStaticController(dir string) *StaticController { return &StaticController{Dir: dir} }

func (c *StaticController) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(c.Dir, name))
	}
}

func (c *StaticController) Assets() http.Handler {
	return http.FileServer(http.Dir(c.Dir))
}
