// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package toolspec

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var SetBaseDirectory = &mcp.Tool{
	Name:        "set_base_directory",
	Description: `Changes the base directory that confines all file operations and git commands. The directory is created if it does not exist. Affects every subsequent operation.`,
}

type SetBaseDirectoryParams struct {
	Path string `json:"path" jsonschema:"The absolute path of the new base directory."`
}

type SetBaseDirectoryResult struct {
	BaseDir string `json:"base_dir" jsonschema:"The new base directory."`
}

var GetBaseDirectory = &mcp.Tool{
	Name:        "get_base_directory",
	Description: `Returns the current base directory.`,
}

type GetBaseDirectoryParams struct {
	// Empty for now
}

type GetBaseDirectoryResult struct {
	BaseDir string `json:"base_dir" jsonschema:"The current base directory."`
}
