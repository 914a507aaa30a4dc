package feas

type Kind uint8

const (
	KindBlankLine Kind = iota
	KindComment
	KindFileReference
	KindLanguageSystem
	KindScript
	KindLanguage
	KindClassDefinition
	KindMarkClassDefinition
	KindFeature
	KindLookup
	KindLookupFlag
	KindFeatureReference
	KindLookupReference
	KindSubstitution
	KindPositionSingle
	KindPositionPair
	KindStylisticSetNames
)

var kindNames = [...]string{
	KindBlankLine:           "blankLine",
	KindComment:             "comment",
	KindFileReference:       "fileReference",
	KindLanguageSystem:      "languageSystem",
	KindScript:              "script",
	KindLanguage:            "language",
	KindClassDefinition:     "classDefinition",
	KindMarkClassDefinition: "markClassDefinition",
	KindFeature:             "feature",
	KindLookup:              "lookup",
	KindLookupFlag:          "lookupflag",
	KindFeatureReference:    "featureReference",
	KindLookupReference:     "lookupReference",
	KindSubstitution:        "substitution",
	KindPositionSingle:      "positionSingle",
	KindPositionPair:        "positionPair",
	KindStylisticSetNames:   "stylisticSetNames",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// kinds always preceded by a blank line
var spaceBefore = map[Kind]bool{
	KindFeature:  true,
	KindLookup:   true,
	KindScript:   true,
	KindLanguage: true,
}

// kinds followed by a blank line when they end a writer
var spaceAfter = map[Kind]bool{
	KindFeature:  true,
	KindLookup:   true,
	KindScript:   true,
	KindLanguage: true,
}

// Op is one statement appended to a Writer.
// The set of ops is closed; Render has one case per implementation.
type Op interface {
	Kind() Kind
	sealed()
}

type BlankLine struct{}

type Comment struct {
	Text string
}

type FileReference struct {
	Path string
}

type LanguageSystem struct {
	Script   string
	Language string
}

type Script struct {
	Name string
}

type Language struct {
	Name           string
	IncludeDefault bool
}

type ClassDefinition struct {
	Name    string
	Members Member
}

type MarkClassDefinition struct {
	Members Member
	Anchor  Anchor
	Name    string
}

type Feature struct {
	Name   string
	Writer *Writer
}

type Lookup struct {
	Name   string
	Writer *Writer
}

type LookupFlag struct {
	Flags []string
}

type FeatureReference struct {
	Name string
}

type LookupReference struct {
	Name string
}

// Substitution with a nil Replacement is an ignore rule.
type Substitution struct {
	Target      Sequence
	Replacement Sequence
	Backtrack   Sequence
	Lookahead   Sequence
	Choice      bool
}

// PositionSingle with a nil Value is an ignore rule.
type PositionSingle struct {
	Target    Sequence
	Value     *ValueRecord
	Backtrack Sequence
	Lookahead Sequence
}

type PositionPair struct {
	Target    Sequence
	Value     *ValueRecord
	Backtrack Sequence
	Lookahead Sequence
	Enumerate bool
}

type StylisticSetNames struct {
	Names []NameEntry
}

func (BlankLine) Kind() Kind           { return KindBlankLine }
func (Comment) Kind() Kind             { return KindComment }
func (FileReference) Kind() Kind       { return KindFileReference }
func (LanguageSystem) Kind() Kind      { return KindLanguageSystem }
func (Script) Kind() Kind              { return KindScript }
func (Language) Kind() Kind            { return KindLanguage }
func (ClassDefinition) Kind() Kind     { return KindClassDefinition }
func (MarkClassDefinition) Kind() Kind { return KindMarkClassDefinition }
func (Feature) Kind() Kind             { return KindFeature }
func (Lookup) Kind() Kind              { return KindLookup }
func (LookupFlag) Kind() Kind          { return KindLookupFlag }
func (FeatureReference) Kind() Kind    { return KindFeatureReference }
func (LookupReference) Kind() Kind     { return KindLookupReference }
func (Substitution) Kind() Kind        { return KindSubstitution }
func (PositionSingle) Kind() Kind      { return KindPositionSingle }
func (PositionPair) Kind() Kind        { return KindPositionPair }
func (StylisticSetNames) Kind() Kind   { return KindStylisticSetNames }

func (BlankLine) sealed()           {}
func (Comment) sealed()             {}
func (FileReference) sealed()       {}
func (LanguageSystem) sealed()      {}
func (Script) sealed()              {}
func (Language) sealed()            {}
func (ClassDefinition) sealed()     {}
func (MarkClassDefinition) sealed() {}
func (Feature) sealed()             {}
func (Lookup) sealed()              {}
func (LookupFlag) sealed()          {}
func (FeatureReference) sealed()    {}
func (LookupReference) sealed()     {}
func (Substitution) sealed()        {}
func (PositionSingle) sealed()      {}
func (PositionPair) sealed()        {}
func (StylisticSetNames) sealed()   {}

// contextOf returns the context lists of substitution and position rules
func contextOf(op Op) (backtrack, lookahead Sequence, ok bool) {
	switch op := op.(type) {
	case Substitution:
		return op.Backtrack, op.Lookahead, true
	case PositionSingle:
		return op.Backtrack, op.Lookahead, true
	case PositionPair:
		return op.Backtrack, op.Lookahead, true
	}
	return nil, nil, false
}
