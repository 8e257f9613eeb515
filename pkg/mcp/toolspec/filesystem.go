// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package toolspec

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var ListFiles = &mcp.Tool{
	Name:        "list_files",
	Description: `Lists files and subdirectories directly within a directory under the base directory. Entries are reported in directory order, not sorted.`,
}

type ListFilesParams struct {
	Directory string `json:"directory,omitempty" jsonschema:"The directory to list, relative to the base directory. Empty lists the base directory itself."`
}

// ListFilesEntry is similar to [io/fs.DirEntry].
type ListFilesEntry struct {
	Name  string `json:"name" jsonschema:"base name of the entry"`
	Size  *int64 `json:"size,omitempty" jsonschema:"length in bytes for regular files"`
	IsDir *bool  `json:"is_dir,omitempty" jsonschema:"true for a directory"`
}

type ListFilesResult struct {
	Entries []ListFilesEntry `json:"entries" jsonschema:"The directory content entries."`
}

var ReadFile = &mcp.Tool{
	Name:        "read_file",
	Description: `Reads and returns the content of a file under the base directory. If the path is a directory, returns its listing instead.`,
}

type ReadFileParams struct {
	Path string `json:"path" jsonschema:"The path of the file to read, relative to the base directory."`
}

type ReadFileResult struct {
	Content     string `json:"content" jsonschema:"The file content decoded as UTF-8, or the directory listing."`
	IsDirectory *bool  `json:"is_directory,omitempty" jsonschema:"true when the path was a directory and content holds its listing"`
}

var WriteFile = &mcp.Tool{
	Name:        "write_file",
	Description: `Writes content to a file under the base directory. An existing file is overwritten in full; missing parent directories are created.`,
}

type WriteFileParams struct {
	Path    string `json:"path" jsonschema:"The path of the file to write, relative to the base directory."`
	Content string `json:"content" jsonschema:"The content to write, encoded as UTF-8."`
}

type WriteFileResult struct {
	// Empty for now
}

var DeleteFile = &mcp.Tool{
	Name:        "delete_file",
	Description: `Deletes a file, or a directory and all of its contents, under the base directory.`,
}

type DeleteFileParams struct {
	Path string `json:"path" jsonschema:"The path to delete, relative to the base directory."`
}

type DeleteFileResult struct {
	// Empty for now
}
