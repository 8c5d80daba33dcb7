// SPDX-License-Identifier: Apache-2.0

package abi

import (
	"testing"

	"github.com/go-evmkit/abicore/pkg/ethtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transferEvent(t *testing.T) *Event {
	return &Event{
		Name: "Transfer",
		Inputs: []Field{
			{Name: "from", Type: NewAddress()},
			{Name: "to", Type: NewAddress()},
			{Name: "data", Type: NewBytes()},
		},
		Indexed: []bool{true, true, false},
	}
}

func TestEventTopicDataSplit(t *testing.T) {
	e := transferEvent(t)
	from := ethtypes.MustNewAddress("0x03706ff580119b130e7d26c5e816913123c24d89")
	to := ethtypes.MustNewAddress("0x0000000000000000000000000000000000dead")
	payload := []byte{0xde, 0xad, 0xbe, 0xef}

	topics, err := e.EncodeTopics([]interface{}{from, to, payload})
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, e.Topic0(), topics[0])

	data, err := EncodeTuple([]*Type{NewBytes()}, []interface{}{payload})
	require.NoError(t, err)

	rawTopics := make([][]byte, len(topics))
	for i, topic := range topics {
		rawTopics[i] = topic[:]
	}
	decoded, err := e.DecodeLog(rawTopics, data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.Equal(t, from, decoded[0])
	assert.Equal(t, to, decoded[1])
	assert.Equal(t, payload, decoded[2])
}

func TestEventIndexedReferenceTypeHashesValue(t *testing.T) {
	e := &Event{
		Name:    "Logged",
		Inputs:  []Field{{Name: "message", Type: NewString()}},
		Indexed: []bool{true},
	}
	topics, err := e.EncodeTopics([]interface{}{"hello"})
	require.NoError(t, err)
	require.Len(t, topics, 2) // topic0 + the hashed indexed string

	rawTopics := [][]byte{topics[0][:], topics[1][:]}
	decoded, err := e.DecodeLog(rawTopics, nil)
	require.NoError(t, err)
	// The indexed reference-typed value is not recoverable - we get its hash back.
	assert.Equal(t, topics[1][:], decoded[0])
}

func TestEventAnonymousHasNoTopic0(t *testing.T) {
	e := transferEvent(t)
	e.Anonymous = true
	from := ethtypes.MustNewAddress("0x03706ff580119b130e7d26c5e816913123c24d89")
	to := ethtypes.MustNewAddress("0x0000000000000000000000000000000000dead")
	topics, err := e.EncodeTopics([]interface{}{from, to, []byte{0x01}})
	require.NoError(t, err)
	assert.Len(t, topics, 2)
}
