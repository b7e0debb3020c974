package team

import "fittrack/set"

// AddMemberID returns the member list with id appended. Adding an id that is
// already present leaves the list unchanged.
func AddMemberID(memberIDs []string, id string) []string {
	if set.FromSlice(memberIDs).Contains(id) {
		return memberIDs
	}
	result := make([]string, 0, len(memberIDs)+1)
	result = append(result, memberIDs...)
	return append(result, id)
}

// RemoveMemberID returns the member list without id, preserving order.
// Removing an id that is absent leaves the list unchanged.
func RemoveMemberID(memberIDs []string, id string) []string {
	if !set.FromSlice(memberIDs).Contains(id) {
		return memberIDs
	}
	result := make([]string, 0, len(memberIDs))
	for _, m := range memberIDs {
		if m != id {
			result = append(result, m)
		}
	}
	return result
}
