package domain

import "strings"

// VoteDirection is the direction of a user's vote on a discussion.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) String() string { return string(d) }

func (d VoteDirection) IsValid() bool {
	switch d {
	case VoteUp, VoteDown:
		return true
	}
	return false
}

// ParseVoteDirection normalizes s (trim, lower-case) into a VoteDirection.
// The boolean is false when s is not one of the accepted literals.
func ParseVoteDirection(s string) (VoteDirection, bool) {
	d := VoteDirection(strings.ToLower(strings.TrimSpace(s)))
	return d, d.IsValid()
}

// FreshDelta is the counter change for a first vote in direction d.
func (d VoteDirection) FreshDelta() int64 {
	if d == VoteUp {
		return 1
	}
	return -1
}

// FlipDelta is the counter change when a vote moves from "from" to d.
// A flip undoes the old vote and applies the new one.
func (d VoteDirection) FlipDelta(from VoteDirection) int64 {
	if from == d {
		return 0
	}
	return 2 * d.FreshDelta()
}

// DeleteStatus describes the outcome of a soft delete.
type DeleteStatus string

const (
	DeleteStatusDeleted         DeleteStatus = "DELETED"
	DeleteStatusAlreadyInactive DeleteStatus = "ALREADY_INACTIVE"
)

func (s DeleteStatus) String() string { return string(s) }
