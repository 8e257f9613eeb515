// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/filegate/filegate/pkg/mcp/toolspec"
	"github.com/filegate/filegate/pkg/pathguard"
	"github.com/filegate/filegate/pkg/ptr"
)

func (ts *ToolSet) ListFiles(_ context.Context,
	_ *mcp.CallToolRequest, args toolspec.ListFilesParams,
) (*mcp.CallToolResult, *toolspec.ListFilesResult, error) {
	dir, err := pathguard.Resolve(ts.root.Get(), args.Directory)
	if err != nil {
		ts.record("list_files", logrus.Fields{"directory": args.Directory}, err)
		return nil, nil, err
	}
	res, listing, err := listDirectory(dir)
	if err != nil {
		ts.record("list_files", logrus.Fields{"directory": dir}, err)
		return nil, nil, err
	}
	ts.record("list_files", logrus.Fields{"directory": dir}, nil)
	return textResult(listing, res), res, nil
}

func (ts *ToolSet) ReadFile(_ context.Context,
	_ *mcp.CallToolRequest, args toolspec.ReadFileParams,
) (*mcp.CallToolResult, *toolspec.ReadFileResult, error) {
	path, err := pathguard.Resolve(ts.root.Get(), args.Path)
	if err != nil {
		ts.record("read_file", logrus.Fields{"path": args.Path}, err)
		return nil, nil, err
	}
	st, err := os.Stat(path)
	if err != nil {
		ts.record("read_file", logrus.Fields{"path": path}, err)
		return nil, nil, err
	}
	if st.IsDir() {
		// Reading a directory returns its listing instead of content.
		_, listing, err := listDirectory(path)
		if err != nil {
			ts.record("read_file", logrus.Fields{"path": path}, err)
			return nil, nil, err
		}
		res := &toolspec.ReadFileResult{
			Content:     listing,
			IsDirectory: ptr.Of(true),
		}
		ts.record("read_file", logrus.Fields{"path": path, "directory": true}, nil)
		return textResult(listing, res), res, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		ts.record("read_file", logrus.Fields{"path": path}, err)
		return nil, nil, err
	}
	res := &toolspec.ReadFileResult{
		Content: string(b),
	}
	ts.record("read_file", logrus.Fields{"path": path, "bytes": len(b)}, nil)
	return textResult(res.Content, res), res, nil
}

func (ts *ToolSet) WriteFile(_ context.Context,
	_ *mcp.CallToolRequest, args toolspec.WriteFileParams,
) (*mcp.CallToolResult, *toolspec.WriteFileResult, error) {
	path, err := pathguard.Resolve(ts.root.Get(), args.Path)
	if err != nil {
		ts.record("write_file", logrus.Fields{"path": args.Path}, err)
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		ts.record("write_file", logrus.Fields{"path": path}, err)
		return nil, nil, err
	}
	if err := os.WriteFile(path, []byte(args.Content), 0o644); err != nil {
		ts.record("write_file", logrus.Fields{"path": path}, err)
		return nil, nil, err
	}
	res := &toolspec.WriteFileResult{}
	ts.record("write_file", logrus.Fields{"path": path, "bytes": len(args.Content)}, nil)
	return textResult(fmt.Sprintf("Wrote %d bytes to %s", len(args.Content), path), res), res, nil
}

func (ts *ToolSet) DeleteFile(_ context.Context,
	_ *mcp.CallToolRequest, args toolspec.DeleteFileParams,
) (*mcp.CallToolResult, *toolspec.DeleteFileResult, error) {
	path, err := pathguard.Resolve(ts.root.Get(), args.Path)
	if err != nil {
		ts.record("delete_file", logrus.Fields{"path": args.Path}, err)
		return nil, nil, err
	}
	st, err := os.Lstat(path)
	if err != nil {
		ts.record("delete_file", logrus.Fields{"path": path}, err)
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
		}
		return nil, nil, err
	}
	if st.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		ts.record("delete_file", logrus.Fields{"path": path}, err)
		return nil, nil, err
	}
	res := &toolspec.DeleteFileResult{}
	ts.record("delete_file", logrus.Fields{"path": path, "directory": st.IsDir()}, nil)
	return textResult(fmt.Sprintf("Deleted %s", path), res), res, nil
}

// listDirectory enumerates the direct children of dir. The listing keeps
// the order returned by the directory enumeration; callers must not assume
// any ordering.
func listDirectory(dir string) (*toolspec.ListFilesResult, string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", err
	}
	res := &toolspec.ListFilesResult{
		Entries: make([]toolspec.ListFilesEntry, len(ents)),
	}
	lines := make([]string, len(ents))
	for i, ent := range ents {
		res.Entries[i].Name = ent.Name()
		res.Entries[i].IsDir = ptr.Of(ent.IsDir())
		tag := "[FILE]"
		if ent.IsDir() {
			tag = "[DIR]"
		} else if info, err := ent.Info(); err == nil {
			res.Entries[i].Size = ptr.Of(info.Size())
		}
		lines[i] = tag + " " + ent.Name()
	}
	return res, strings.Join(lines, "\n"), nil
}
