package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// FakePod is an in-memory pod exposing documents over HTTP for tests.
// Documents are keyed by path; containers are implicit and list their direct
// children. HEAD responses advertise an acl link relation unless
// DisableACLLink is set.
type FakePod struct {
	Server *httptest.Server

	// DisableACLLink suppresses the Link header on HEAD responses to
	// simulate a pod without ACL discovery.
	DisableACLLink bool

	mu      sync.Mutex
	docs    map[string][]byte
	counter int
}

// CreatePod spins up a fake pod. The cleanup function stops the server.
func CreatePod() (*FakePod, func()) {
	pod := &FakePod{
		docs: make(map[string][]byte),
	}
	pod.Server = httptest.NewServer(http.HandlerFunc(pod.handle))
	return pod, pod.Server.Close
}

// URL resolves a path against the pod's base URL.
func (p *FakePod) URL(path string) string {
	return p.Server.URL + path
}

// Exists reports whether a document is stored at the given path.
func (p *FakePod) Exists(path string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.docs[path]
	return ok
}

// PutJSON stores a document directly, bypassing HTTP.
func (p *FakePod) PutJSON(path string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.docs[path] = body
	return nil
}

// GetJSON decodes a stored document directly, bypassing HTTP.
func (p *FakePod) GetJSON(path string, out any) error {
	p.mu.Lock()
	body, ok := p.docs[path]
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("document %s not found", path)
	}
	return json.Unmarshal(body, out)
}

func (p *FakePod) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch r.Method {
	case http.MethodHead:
		if !p.DisableACLLink {
			w.Header().Set("Link", fmt.Sprintf("<%s.acl>; rel=\"acl\"", path))
		}
		w.WriteHeader(http.StatusOK)

	case http.MethodGet:
		p.mu.Lock()
		body, ok := p.docs[path]
		p.mu.Unlock()
		if ok {
			w.Header().Set("Content-Type", "application/ld+json")
			w.Write(body)
			return
		}
		if strings.HasSuffix(path, "/") {
			p.writeListing(w, path)
			return
		}
		http.NotFound(w, r)

	case http.MethodPut:
		p.mu.Lock()
		_, exists := p.docs[path]
		if exists && r.Header.Get("If-None-Match") == "*" {
			p.mu.Unlock()
			w.WriteHeader(http.StatusPreconditionFailed)
			return
		}
		body := readAll(r)
		p.docs[path] = body
		p.mu.Unlock()
		w.WriteHeader(http.StatusCreated)

	case http.MethodPost:
		if !strings.HasSuffix(path, "/") {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		p.mu.Lock()
		p.counter++
		name := fmt.Sprintf("doc-%d", p.counter)
		p.docs[path+name] = readAll(r)
		p.mu.Unlock()
		w.Header().Set("Location", path+name)
		w.WriteHeader(http.StatusCreated)

	case http.MethodDelete:
		p.mu.Lock()
		_, ok := p.docs[path]
		delete(p.docs, path)
		p.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// writeListing serves the implicit container listing: direct children only.
func (p *FakePod) writeListing(w http.ResponseWriter, path string) {
	p.mu.Lock()
	contains := make([]string, 0)
	for key := range p.docs {
		if !strings.HasPrefix(key, path) {
			continue
		}
		rest := strings.TrimPrefix(key, path)
		if rest == "" || strings.Contains(strings.TrimSuffix(rest, "/"), "/") {
			continue
		}
		contains = append(contains, key)
	}
	p.mu.Unlock()

	body, _ := json.Marshal(map[string]any{
		"id":       path,
		"contains": contains,
	})
	w.Header().Set("Content-Type", "application/ld+json")
	w.Write(body)
}

func readAll(r *http.Request) []byte {
	defer r.Body.Close()
	body, _ := io.ReadAll(r.Body)
	return body
}
