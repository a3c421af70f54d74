package cubesim

// Pivot is a transient coordinate frame created for the duration of one
// layer rotation. It starts at identity, parented to the assembly root,
// owns the selected pieces while the rotation animates, and is destroyed
// once every piece has been detached back to the assembly.
type Pivot struct {
	// Rel is the pivot frame relative to the assembly root. The engine
	// drives Rel.Rot from zero to the move's target angle.
	Rel Transform

	pieces []*Piece
}

// NewPivot creates an identity pivot with no pieces attached.
func NewPivot() *Pivot {
	return &Pivot{Rel: IdentityTransform()}
}

// Pieces returns the pieces currently owned by the pivot.
func (pv *Pivot) Pieces() []*Piece {
	return pv.pieces
}

// WorldTransform returns the world-space transform of a captured piece.
func (pv *Pivot) WorldTransform(a *Assembly, p *Piece) Transform {
	return a.Root.Mul(pv.Rel).Mul(p.Local)
}

// Attach re-expresses the piece's transform relative to the pivot frame and
// transfers ownership to the pivot. The piece's world-space transform is
// unchanged: newLocal = inv(pivotWorld) * assemblyWorld * oldLocal.
//
// Both world transforms are computed fresh inside the call, so there is no
// cached matrix for a caller to leave stale.
func (pv *Pivot) Attach(a *Assembly, p *Piece) {
	pivotWorld := a.Root.Mul(pv.Rel)
	pieceWorld := a.Root.Mul(p.Local)
	p.Local = pivotWorld.Inverse().Mul(pieceWorld)
	pv.pieces = append(pv.pieces, p)
}

// Detach is the inverse operation: the piece's transform is re-expressed
// relative to the assembly frame, again preserving its world-space
// transform, and ownership returns to the assembly.
func (pv *Pivot) Detach(a *Assembly, p *Piece) {
	pieceWorld := a.Root.Mul(pv.Rel).Mul(p.Local)
	p.Local = a.Root.Inverse().Mul(pieceWorld)

	for i, q := range pv.pieces {
		if q == p {
			pv.pieces = append(pv.pieces[:i], pv.pieces[i+1:]...)
			break
		}
	}
}
