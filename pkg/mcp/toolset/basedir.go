// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/filegate/filegate/pkg/mcp/toolspec"
)

func (ts *ToolSet) SetBaseDirectory(_ context.Context,
	_ *mcp.CallToolRequest, args toolspec.SetBaseDirectoryParams,
) (*mcp.CallToolResult, *toolspec.SetBaseDirectoryResult, error) {
	if err := ts.root.Set(args.Path); err != nil {
		ts.record("set_base_directory", logrus.Fields{"path": args.Path}, err)
		return nil, nil, err
	}
	res := &toolspec.SetBaseDirectoryResult{
		BaseDir: ts.root.Get(),
	}
	ts.record("set_base_directory", logrus.Fields{"path": res.BaseDir}, nil)
	return textResult(fmt.Sprintf("Base directory set to %s", res.BaseDir), res), res, nil
}

func (ts *ToolSet) GetBaseDirectory(_ context.Context,
	_ *mcp.CallToolRequest, _ toolspec.GetBaseDirectoryParams,
) (*mcp.CallToolResult, *toolspec.GetBaseDirectoryResult, error) {
	res := &toolspec.GetBaseDirectoryResult{
		BaseDir: ts.root.Get(),
	}
	ts.record("get_base_directory", logrus.Fields{"path": res.BaseDir}, nil)
	return textResult(res.BaseDir, res), res, nil
}
