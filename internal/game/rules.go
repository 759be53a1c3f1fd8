package game

// Deploy rejection reasons surfaced through DeployResult. An empty reason
// means the placement is legal.
const (
	ReasonOutOfBounds = "position out of bounds"
	ReasonOccupied    = "cell occupied"
	ReasonRiver       = "cannot deploy on the river"
	ReasonTowerCell   = "cannot deploy on a tower"
	ReasonWrongSide   = "not on your side of the river"
)

// IsEnemy is the single ownership test behind every friendly-fire check.
// Unset owners are never enemies.
func IsEnemy(ownerA, ownerB string) bool {
	if ownerA == "" || ownerB == "" {
		return false
	}
	return ownerA != ownerB
}

// IsOnOwnerSide reports whether col is strictly on owner's side of the
// river. Player 1 owns columns left of the river, player 2 right of it;
// river columns belong to neither. Unknown owners are denied.
func IsOnOwnerSide(a *Arena, owner string, col int) bool {
	switch owner {
	case a.p1ID:
		return col < a.RiverLeftCol()
	case a.p2ID:
		return col > a.RiverRightCol()
	}
	return false
}

// DeployReason returns why a deploy at (row, col) is illegal for owner, or
// "" when it is allowed.
func DeployReason(a *Arena, owner string, row, col int) string {
	switch {
	case !a.InBounds(row, col):
		return ReasonOutOfBounds
	case a.IsRiverColumn(col):
		return ReasonRiver
	case a.IsTowerCell(row, col):
		return ReasonTowerCell
	case a.Get(row, col) != nil:
		return ReasonOccupied
	case !IsOnOwnerSide(a, owner, col):
		return ReasonWrongSide
	}
	return ""
}

// IsValidDeploy is the single placement authority for every deploy path:
// human commands, the automated opponent, and tests all go through it.
func IsValidDeploy(a *Arena, owner string, row, col int) bool {
	return DeployReason(a, owner, row, col) == ""
}
