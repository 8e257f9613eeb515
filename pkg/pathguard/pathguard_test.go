// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package pathguard

import (
	"errors"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestResolve(t *testing.T) {
	root := filepath.FromSlash("/srv/files")

	tests := []struct {
		name      string
		requested string
		want      string
		wantErr   bool
	}{
		{
			name:      "empty path means root",
			requested: "",
			want:      root,
		},
		{
			name:      "bare slash means root",
			requested: "/",
			want:      root,
		},
		{
			name:      "bare backslash means root",
			requested: `\`,
			want:      root,
		},
		{
			name:      "simple relative path",
			requested: "a/b.txt",
			want:      filepath.Join(root, "a", "b.txt"),
		},
		{
			name:      "absolute-looking path is treated as relative",
			requested: "/etc/passwd",
			want:      filepath.Join(root, "etc", "passwd"),
		},
		{
			name:      "multiple leading slashes",
			requested: "///a/b",
			want:      filepath.Join(root, "a", "b"),
		},
		{
			name:      "inner dot-dot that stays inside",
			requested: "a/../b",
			want:      filepath.Join(root, "b"),
		},
		{
			name:      "dot-dot collapsing to root",
			requested: "a/..",
			want:      root,
		},
		{
			name:      "plain traversal",
			requested: "../x",
			wantErr:   true,
		},
		{
			name:      "bare dot-dot",
			requested: "..",
			wantErr:   true,
		},
		{
			name:      "traversal behind leading slashes",
			requested: "/../etc/passwd",
			wantErr:   true,
		},
		{
			name:      "traversal behind many leading slashes",
			requested: "/////../etc/passwd",
			wantErr:   true,
		},
		{
			name:      "backslash traversal",
			requested: `..\x`,
			wantErr:   true,
		},
		{
			name:      "deep traversal",
			requested: "a/../../../etc/passwd",
			wantErr:   true,
		},
		{
			name:      "dot is root",
			requested: ".",
			want:      root,
		},
		{
			name:      "three dots is a regular name",
			requested: "...",
			want:      filepath.Join(root, "..."),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Resolve(root, test.requested)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrPathEscape)
			} else {
				assert.NilError(t, err)
				assert.Equal(t, test.want, got)
			}
		})
	}
}

func TestResolveLeadingSlashTraversal(t *testing.T) {
	// Any number of leading slashes followed by a dot-dot segment must fail,
	// no matter how many slashes are stripped.
	root := filepath.FromSlash("/srv/files")
	requested := "../secret"
	for range 8 {
		requested = "/" + requested
		_, err := Resolve(root, requested)
		assert.Assert(t, errors.Is(err, ErrPathEscape), "requested=%q", requested)
	}
}

func TestResolveConfinement(t *testing.T) {
	// Whatever resolves without error must be root or a strict descendant.
	root := filepath.FromSlash("/srv/files")
	inputs := []string{
		"", "/", `\`, ".", "a", "a/b/c", "/a/b/c", "a/./b", "a//b",
		"a/../b", "deep/../../x1", "..", "../..", "/..", `\..`,
	}
	for _, requested := range inputs {
		got, err := Resolve(root, requested)
		if err != nil {
			continue
		}
		rel, relErr := filepath.Rel(root, got)
		assert.NilError(t, relErr)
		assert.Assert(t, rel == "." || !filepath.IsAbs(rel) &&
			rel != ".." && !isParentRel(rel), "requested=%q resolved=%q rel=%q", requested, got, rel)
	}
}

func isParentRel(rel string) bool {
	return len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}
