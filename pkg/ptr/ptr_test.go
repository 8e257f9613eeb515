// SPDX-FileCopyrightText: Copyright The Filegate Authors
// SPDX-License-Identifier: Apache-2.0

package ptr

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestOf(t *testing.T) {
	assert.DeepEqual(t, true, *Of(true))
	assert.DeepEqual(t, 10, *Of(10))
	assert.DeepEqual(t, "", *Of(""))
	assert.DeepEqual(t, "value", *Of("value"))
}
