package smiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_ExtendInstallsReciprocalBonds(t *testing.T) {
	b := NewBuilder()
	root := b.AddRoot(Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{0, 1})
	leaf := b.Extend(BondDouble, Atom{Kind: KindAliphatic, Symbol: "O", HCount: NoHCount}, Span{1, 2})

	adj, err := b.Build()
	require.NoError(t, err)
	require.Len(t, adj.Atoms, 2)

	require.Len(t, adj.Atoms[root].Bonds, 1)
	assert.Equal(t, Bond{Kind: BondDouble, Target: leaf}, adj.Atoms[root].Bonds[0])
	require.Len(t, adj.Atoms[leaf].Bonds, 1)
	assert.Equal(t, Bond{Kind: BondDouble, Target: root}, adj.Atoms[leaf].Bonds[0])
}

func TestBuilder_RingClosureReconcilesElidedAgainstExplicit(t *testing.T) {
	b := NewBuilder()
	root := b.AddRoot(Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{0, 1})
	require.NoError(t, b.Ring(BondElided, 1, Span{1, 2}))
	b.Extend(BondElided, Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{2, 3})
	last := b.Extend(BondElided, Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{3, 4})
	require.NoError(t, b.Ring(BondDouble, 1, Span{4, 5}))

	adj, err := b.Build()
	require.NoError(t, err)

	var closingBond Bond
	for _, bond := range adj.Atoms[last].Bonds {
		if bond.Target == root {
			closingBond = bond
		}
	}
	assert.Equal(t, BondDouble, closingBond.Kind)

	var openerBond Bond
	for _, bond := range adj.Atoms[root].Bonds {
		if bond.Target == last {
			openerBond = bond
		}
	}
	assert.Equal(t, BondDouble, openerBond.Kind)
}

func TestBuilder_RingClosureConflictingExplicitKinds(t *testing.T) {
	b := NewBuilder()
	b.AddRoot(Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{0, 1})
	require.NoError(t, b.Ring(BondSingle, 1, Span{1, 2}))
	b.Extend(BondElided, Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{2, 3})
	err := b.Ring(BondDouble, 1, Span{3, 4})

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.Digit)
}

func TestBuilder_RingOpenerBondKeepsTextualPosition(t *testing.T) {
	// C12C1C2 style: two ring digits opened on the same atom, first digit
	// closed by the second atom, second digit closed later. The opener's
	// placeholder for digit 1 must stay at Bonds[0], not move to the end
	// once resolved.
	b := NewBuilder()
	root := b.AddRoot(Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{0, 1})
	require.NoError(t, b.Ring(BondElided, 1, Span{1, 2}))
	require.NoError(t, b.Ring(BondElided, 2, Span{2, 3}))
	mid := b.Extend(BondElided, Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{3, 4})
	require.NoError(t, b.Ring(BondElided, 1, Span{4, 5}))
	last := b.Extend(BondElided, Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{5, 6})
	require.NoError(t, b.Ring(BondElided, 2, Span{6, 7}))

	adj, err := b.Build()
	require.NoError(t, err)

	require.Len(t, adj.Atoms[root].Bonds, 3)
	assert.Equal(t, mid, adj.Atoms[root].Bonds[0].Target, "digit 1's opener slot must remain first")
	assert.Equal(t, last, adj.Atoms[root].Bonds[1].Target, "digit 2's opener slot must remain second")
}

func TestBuilder_UnclosedRingAtBuild(t *testing.T) {
	b := NewBuilder()
	b.AddRoot(Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{0, 1})
	require.NoError(t, b.Ring(BondElided, 1, Span{1, 2}))

	_, err := b.Build()
	var ur *UnclosedRingError
	require.ErrorAs(t, err, &ur)
	assert.Equal(t, 1, ur.Digit)
}

func TestBuilder_UnclosedBranchAtBuild(t *testing.T) {
	b := NewBuilder()
	b.AddRoot(Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{0, 1})
	b.BranchStart()

	_, err := b.Build()
	var ub *UnclosedBranchError
	require.ErrorAs(t, err, &ub)
}

func TestBuilder_ImplicitHydrogenSaturatesStandardValence(t *testing.T) {
	b := NewBuilder()
	root := b.AddRoot(Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{0, 1})
	b.Extend(BondSingle, Atom{Kind: KindAliphatic, Symbol: "C", HCount: NoHCount}, Span{1, 2})

	adj, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, adj.Atoms[root].HCount)
}

func TestBuilder_ExplicitHydrogenCountIsNotOverwritten(t *testing.T) {
	b := NewBuilder()
	root := b.AddRoot(Atom{Kind: KindBracket, Symbol: "N", HCount: 3, Charge: 1}, Span{0, 6})

	adj, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, adj.Atoms[root].HCount)
}

func TestBuilder_AromaticBondCountsAsOneAndAHalf(t *testing.T) {
	b := NewBuilder()
	root := b.AddRoot(Atom{Kind: KindAromatic, Symbol: "c", Aromatic: true, HCount: NoHCount}, Span{0, 1})
	require.NoError(t, b.Ring(BondAromatic, 1, Span{1, 2}))
	b.Extend(BondAromatic, Atom{Kind: KindAromatic, Symbol: "c", Aromatic: true, HCount: NoHCount}, Span{2, 3})
	last := b.Extend(BondAromatic, Atom{Kind: KindAromatic, Symbol: "c", Aromatic: true, HCount: NoHCount}, Span{3, 4})
	require.NoError(t, b.Ring(BondAromatic, 1, Span{4, 5}))

	adj, err := b.Build()
	require.NoError(t, err)

	// Each ring carbon carries two aromatic bonds (sum 3.0, floor 3, ceil 3)
	// so exactly one implicit hydrogen is left to reach valence 4.
	assert.Equal(t, 1, adj.Atoms[root].HCount)
	assert.Equal(t, 1, adj.Atoms[last].HCount)
}
