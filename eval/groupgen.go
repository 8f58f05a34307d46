package eval

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ergoplasma/ergotree-go/data"
)

// groupGenerator resolves the GroupGenerator leaf: the curve's fixed base
// point, encoded the same compressed-SEC1 way every other GroupElement
// is (§3: "opcode-addressable leaves for sigma-protocol constructors").
// It never decomposes or recombines the point — construction through
// data.NewGroupElement is enough to keep the value opaque to everything
// past this leaf.
func groupGenerator() (data.GroupElement, error) {
	var scalarOne [32]byte
	scalarOne[31] = 1
	priv := secp256k1.PrivKeyFromBytes(scalarOne[:])
	compressed := priv.PubKey().SerializeCompressed()
	return data.NewGroupElement(compressed)
}
