package triples

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// LocalNames extracts display names from URIs. Type and property URIs repeat
// millions of times across a dump, so extractions are memoized and the cached
// string is shared by every index entry that references it.
type LocalNames struct {
	cache *gocache.Cache
}

// NewLocalNames creates a new memoizing extractor.
func NewLocalNames() *LocalNames {
	return &LocalNames{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the local name of a URI: the segment after the last '/' or '#'.
// No percent-decoding is applied; the name is a display label only.
func (l *LocalNames) Get(uri string) string {
	if name, found := l.cache.Get(uri); found {
		return name.(string)
	}
	name := LocalName(uri)
	l.cache.Set(uri, name, gocache.NoExpiration)
	return name
}

// LocalName extracts the final '/'- or '#'-delimited segment of a URI.
func LocalName(uri string) string {
	if i := strings.LastIndexAny(uri, "/#"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
