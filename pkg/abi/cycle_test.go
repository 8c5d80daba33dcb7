// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCyclesNoCycle(t *testing.T) {
	person := NewStruct("Person", Field{Name: "wallet", Type: NewAddress()}, Field{Name: "name", Type: NewString()})
	mail := NewStruct("Mail", Field{Name: "from", Type: person}, Field{Name: "to", Type: person})
	require.NoError(t, CheckCycles(mail))
}

func TestCheckCyclesDirect(t *testing.T) {
	// Self-referencing struct: Node{next Node}.
	node := &Type{kind: KindStruct, name: "Node"}
	node.fields = []Field{{Name: "next", Type: node}}
	err := CheckCycles(node)
	require.Error(t, err)
}

func TestCheckCyclesIndirect(t *testing.T) {
	a := &Type{kind: KindStruct, name: "A"}
	b := &Type{kind: KindStruct, name: "B"}
	a.fields = []Field{{Name: "b", Type: b}}
	b.fields = []Field{{Name: "a", Type: a}}
	err := CheckCycles(a)
	require.Error(t, err)
}

func TestCheckCyclesThroughArray(t *testing.T) {
	node := &Type{kind: KindStruct, name: "Node"}
	node.fields = []Field{{Name: "children", Type: NewArray(node)}}
	err := CheckCycles(node)
	require.Error(t, err)
}

func TestCheckCyclesNil(t *testing.T) {
	assert.NoError(t, CheckCycles(nil))
}
