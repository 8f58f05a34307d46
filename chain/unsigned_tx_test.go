package chain

import (
	"testing"

	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario 6: one input referencing the all-zero box id, no data inputs,
// one output of 1_000_000 with empty ergo-tree bytes, creation height 0,
// no tokens, no registers.
func TestScenario6DeterministicID(t *testing.T) {
	var zeroID BoxID
	tx, err := NewUnsignedTransaction(
		[]Input{{BoxID: zeroID}},
		nil,
		[]OutputCandidate{{Value: 1_000_000, ErgoTree: nil, CreationHeight: 0}},
	)
	require.NoError(t, err)

	bts, err := tx.BytesToSign()
	require.NoError(t, err)
	assert.NotEmpty(t, bts)

	tx2, err := NewUnsignedTransaction(
		[]Input{{BoxID: zeroID}},
		nil,
		[]OutputCandidate{{Value: 1_000_000, ErgoTree: nil, CreationHeight: 0}},
	)
	require.NoError(t, err)
	assert.Equal(t, tx.ID(), tx2.ID(), "same inputs must produce the same tx id")

	bts2, err := tx2.BytesToSign()
	require.NoError(t, err)
	assert.Equal(t, bts, bts2, "serialize_for_signing is deterministic")

	assert.Equal(t, Blake2b256(bts), tx.ID())
}

func TestConstructionRejectsEmptyInputsOrOutputs(t *testing.T) {
	var zeroID BoxID
	_, err := NewUnsignedTransaction(nil, nil, []OutputCandidate{{Value: 1, CreationHeight: 0}})
	assert.Error(t, err)

	_, err = NewUnsignedTransaction([]Input{{BoxID: zeroID}}, nil, nil)
	assert.Error(t, err)
}

func TestDistinctTokenIDsPreservesFirstAppearanceOrder(t *testing.T) {
	var zeroID BoxID
	var t1, t2 TokenID
	t1[0] = 1
	t2[0] = 2

	tx, err := NewUnsignedTransaction(
		[]Input{{BoxID: zeroID}},
		nil,
		[]OutputCandidate{
			{Value: 1, CreationHeight: 0, Tokens: []Token{{ID: t1, Amount: 5}, {ID: t2, Amount: 1}}},
			{Value: 1, CreationHeight: 0, Tokens: []Token{{ID: t1, Amount: 1}}},
		},
	)
	require.NoError(t, err)

	ids := tx.DistinctTokenIDs()
	require.Len(t, ids, 2)
	assert.Equal(t, t1, ids[0])
	assert.Equal(t, t2, ids[1])
}

func TestJSONRoundTripRecomputesID(t *testing.T) {
	var zeroID BoxID
	ext := ergoctx.NewExtension(map[byte]data.Value{0: data.Int(42)})
	tx, err := NewUnsignedTransaction(
		[]Input{{BoxID: zeroID, Extension: ext}},
		nil,
		[]OutputCandidate{{
			Value:          1_000_000,
			ErgoTree:       []byte{0x01, 0x02},
			CreationHeight: 10,
			Registers:      map[byte]data.Value{4: data.Boolean(true)},
		}},
	)
	require.NoError(t, err)

	b, err := tx.MarshalJSON()
	require.NoError(t, err)

	decoded, err := UnmarshalUnsignedTransactionJSON(b)
	require.NoError(t, err)

	assert.Equal(t, tx.ID(), decoded.ID())
	assert.Equal(t, tx.Outputs(), decoded.Outputs())
	v, ok := decoded.Inputs()[0].Extension.Get(0)
	require.True(t, ok)
	assert.Equal(t, data.Int(42), v)
}

func TestJSONEncodesEmptyDataInputsAsEmptyArray(t *testing.T) {
	var zeroID BoxID
	tx, err := NewUnsignedTransaction(
		[]Input{{BoxID: zeroID}},
		nil,
		[]OutputCandidate{{Value: 1, CreationHeight: 0}},
	)
	require.NoError(t, err)

	b, err := tx.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"dataInputs":[]`)
}

func TestBuilderProducesSameTransactionAsDirectConstructor(t *testing.T) {
	var zeroID BoxID
	direct, err := NewUnsignedTransaction(
		[]Input{{BoxID: zeroID}},
		nil,
		[]OutputCandidate{{Value: 7, CreationHeight: 1}},
	)
	require.NoError(t, err)

	built, err := NewUnsignedTxBuilder().
		Input(zeroID, ergoctx.Extension{}).
		Output(OutputCandidate{Value: 7, CreationHeight: 1}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, direct.ID(), built.ID())
}

func TestBoxRegisterAccessors(t *testing.T) {
	var id BoxID
	id[0] = 9
	box, err := NewBox(id, 100, []byte{0xAB}, 5, []Token{{ID: TokenID{1}, Amount: 3}}, map[byte]data.Value{4: data.Long(7)})
	require.NoError(t, err)

	v, ok := box.Register(0)
	require.True(t, ok)
	assert.Equal(t, data.Long(100), v)

	_, ok = box.Register(5)
	assert.False(t, ok, "unset additional register is absent, never an error")

	v, ok = box.Register(4)
	require.True(t, ok)
	assert.Equal(t, data.Long(7), v)

	assert.Equal(t, data.Long(100), box.Value())
	assert.Equal(t, data.Int(5), box.CreationHeight())
}
