// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gotest.tools/v3/assert"

	"github.com/filegate/filegate/pkg/mcp/toolspec"
	"github.com/filegate/filegate/pkg/rootdir"
)

func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	assert.Equal(t, 1, len(res.Content))
	tc, ok := res.Content[0].(*mcp.TextContent)
	assert.Assert(t, ok)
	return tc.Text
}

func TestSetBaseDirectory(t *testing.T) {
	ts := newTestToolSet(t)
	ctx := context.Background()

	newRoot := filepath.Join(t.TempDir(), "newroot")
	_, res, err := ts.SetBaseDirectory(ctx, nil, toolspec.SetBaseDirectoryParams{Path: newRoot})
	assert.NilError(t, err)
	assert.Equal(t, newRoot, res.BaseDir)
	st, err := os.Stat(newRoot)
	assert.NilError(t, err)
	assert.Assert(t, st.IsDir())

	_, getRes, err := ts.GetBaseDirectory(ctx, nil, toolspec.GetBaseDirectoryParams{})
	assert.NilError(t, err)
	assert.Equal(t, newRoot, getRes.BaseDir)
}

func TestSetBaseDirectoryRejectsRelative(t *testing.T) {
	ts := newTestToolSet(t)
	prior := ts.root.Get()

	_, _, err := ts.SetBaseDirectory(context.Background(), nil,
		toolspec.SetBaseDirectoryParams{Path: "relative/path"})
	assert.ErrorIs(t, err, rootdir.ErrInvalidRoot)

	_, res, err := ts.GetBaseDirectory(context.Background(), nil, toolspec.GetBaseDirectoryParams{})
	assert.NilError(t, err)
	assert.Equal(t, prior, res.BaseDir)
}

func TestSetBaseDirectoryAffectsSubsequentOperations(t *testing.T) {
	ts := newTestToolSet(t)
	ctx := context.Background()

	_, _, err := ts.WriteFile(ctx, nil, toolspec.WriteFileParams{Path: "old.txt", Content: "x"})
	assert.NilError(t, err)

	newRoot := filepath.Join(t.TempDir(), "other")
	_, _, err = ts.SetBaseDirectory(ctx, nil, toolspec.SetBaseDirectoryParams{Path: newRoot})
	assert.NilError(t, err)

	_, res, err := ts.ListFiles(ctx, nil, toolspec.ListFilesParams{})
	assert.NilError(t, err)
	assert.Equal(t, 0, len(res.Entries))
}
