// Package serve exposes the directory of a presentation over http on the loopback,
// for decks whose assets refuse to load from file urls.
package serve

import (
	"context"
	"net"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server is a static file server on a random loopback port
type Server struct {
	// URL is the base url, such as "http://127.0.0.1:35521"
	URL string

	srv  *http.Server
	done chan struct{}
}

// New serves the files under dir until Close is called
func New(dir string) (*Server, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(dir))))

	s := &Server{
		URL:  "http://" + l.Addr().String(),
		srv:  &http.Server{Handler: engine},
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		_ = s.srv.Serve(l)
	}()

	return s, nil
}

// File returns the url of the file with name under the served dir
func (s *Server) File(name string) string {
	return s.URL + "/" + url.PathEscape(name)
}

// Close the server and wait for it to exit
func (s *Server) Close() error {
	err := s.srv.Shutdown(context.Background())
	<-s.done
	return err
}
