package scope

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mintra-ruensuk/LAMP-server/internal/crypt"
)

var ErrUnresolvedScope = errors.New("unresolved scope identifier")

// Kind can be one of:
//   - Participant
//   - Study
//   - Researcher
type Kind string

const (
	KindParticipant Kind = "Participant"
	KindStudy       Kind = "Study"
	KindResearcher  Kind = "Researcher"
)

// Identifier is a decoded scope id. ParticipantID is set for participants,
// AdminID for studies and researchers.
type Identifier struct {
	Kind          Kind
	ParticipantID string
	AdminID       int64
}

// Resolver decodes opaque scope ids.
type Resolver interface {
	Resolve(id string) (Identifier, error)
}

// Filter is the storage level filter a scope resolves to. At most one of the
// keys is set; neither set means no filter.
type Filter struct {
	// UserKey is the encrypted participant (study) id of the owning user.
	UserKey *string
	// OwnerKey is the admin id owning the study.
	OwnerKey *int64
}

func (f Filter) IsUnfiltered() bool {
	return f.UserKey == nil && f.OwnerKey == nil
}

// FilterFor maps a resolved identifier to a storage filter.
func FilterFor(id Identifier, cipher crypt.Cipher) (Filter, error) {
	switch id.Kind {
	case KindParticipant:
		userKey := cipher.Encrypt(id.ParticipantID)
		return Filter{UserKey: &userKey}, nil
	case KindStudy, KindResearcher:
		ownerKey := id.AdminID
		return Filter{OwnerKey: &ownerKey}, nil
	default:
		return Filter{}, fmt.Errorf("%w: kind [%s]", ErrUnresolvedScope, id.Kind)
	}
}

// PackedResolver decodes the packed identifiers handed out by the API:
// base64url("<Kind>:<field>"), e.g. "Participant:U1234567890" or "Study:42".
type PackedResolver struct{}

func NewPackedResolver() *PackedResolver {
	return &PackedResolver{}
}

func (PackedResolver) Resolve(id string) (Identifier, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(id, "="))
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %q is not a packed id", ErrUnresolvedScope, id)
	}

	kind, field, found := strings.Cut(string(decoded), ":")
	if !found || field == "" {
		return Identifier{}, fmt.Errorf("%w: %q", ErrUnresolvedScope, id)
	}

	switch Kind(kind) {
	case KindParticipant:
		return Identifier{Kind: KindParticipant, ParticipantID: field}, nil
	case KindStudy, KindResearcher:
		adminID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return Identifier{}, fmt.Errorf("%w: invalid admin id in %q", ErrUnresolvedScope, id)
		}
		return Identifier{Kind: Kind(kind), AdminID: adminID}, nil
	default:
		return Identifier{}, fmt.Errorf("%w: unknown kind %q", ErrUnresolvedScope, kind)
	}
}

// Pack is the inverse of PackedResolver.Resolve.
func Pack(id Identifier) string {
	field := id.ParticipantID
	if id.Kind != KindParticipant {
		field = strconv.FormatInt(id.AdminID, 10)
	}
	return base64.RawURLEncoding.EncodeToString([]byte(string(id.Kind) + ":" + field))
}
