package filesystem

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"

	"github.com/revelaction/nlpcorpus/corpus"
	"github.com/revelaction/nlpcorpus/nlperr"
)

// ReadAllowList loads an allow-list file: one document id per line, blank
// lines and lines starting with # ignored. The filter is named after the
// file.
func ReadAllowList(ctx context.Context, location string) (*corpus.AllowList, error) {
	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: allow-list %s: %w", nlperr.ErrResourceLoad, location, err)
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}

	name := strings.TrimSuffix(path.Base(location), path.Ext(location))
	return corpus.NewAllowList(name, ids), nil
}
