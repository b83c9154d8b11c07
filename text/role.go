package text

// Role is the semantic classification of a text line
type Role int

const (
	// RoleUnset means no classification has been attempted yet
	RoleUnset Role = iota
	RoleUnknown
	RoleLyrics
	RoleChordName
	RoleTitle
	RoleDirection
	RoleNumber
	RolePartName
	RoleCreator
	RoleCreatorArranger
	RoleCreatorComposer
	RoleCreatorLyricist
	RoleRights
	RoleEndingNumber
	RoleEndingText
)

// String returns a string representation of the role
func (r Role) String() string {
	switch r {
	case RoleUnset:
		return "unset"
	case RoleLyrics:
		return "lyrics"
	case RoleChordName:
		return "chordName"
	case RoleTitle:
		return "title"
	case RoleDirection:
		return "direction"
	case RoleNumber:
		return "number"
	case RolePartName:
		return "partName"
	case RoleCreator:
		return "creator"
	case RoleCreatorArranger:
		return "creatorArranger"
	case RoleCreatorComposer:
		return "creatorComposer"
	case RoleCreatorLyricist:
		return "creatorLyricist"
	case RoleRights:
		return "rights"
	case RoleEndingNumber:
		return "endingNumber"
	case RoleEndingText:
		return "endingText"
	default:
		return "unknown"
	}
}

// IsCreator reports whether the role is the generic creator or one of its
// specializations
func (r Role) IsCreator() bool {
	switch r {
	case RoleCreator, RoleCreatorArranger, RoleCreatorComposer, RoleCreatorLyricist:
		return true
	default:
		return false
	}
}
