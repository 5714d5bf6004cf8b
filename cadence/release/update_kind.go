package release

const (
	UnknownUpdate UpdateKind = iota
	InitialUpdate
	MajorUpdate
	MinorUpdate
	PatchUpdate
)

// UpdateKind labels a release by which version component advanced relative
// to the previous release of the same package.
type UpdateKind int

var updateKindStr = []string{
	"UnknownUpdate",
	"initial",
	"major",
	"minor",
	"patch",
}

var UpdateKinds = []UpdateKind{
	InitialUpdate,
	MajorUpdate,
	MinorUpdate,
	PatchUpdate,
}

func (k UpdateKind) String() string {
	if int(k) >= len(updateKindStr) || k < 0 {
		return updateKindStr[0]
	}
	return updateKindStr[k]
}

// MarshalText makes the kind render as its name in JSON documents.
func (k UpdateKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
