package annotation

import (
	"regexp"
	"strings"

	"github.com/mintra-ruensuk/LAMP-server/internal/crypt"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"
)

// Annotations are self reports of the form "I am <where> <with whom>",
// e.g. "I am at work with peers". Either half may be left out, and the
// sentence may follow other text.
var (
	clausePattern = regexp.MustCompile(`(?:^|\s)i am\s+(.+)$`)
	splitPattern  = regexp.MustCompile(`^(.+?)\s+(alone|in .+|with .+)$`)
)

var locationPhrases = map[string]sensor.LocationContext{
	"home":               sensor.LocationHome,
	"in school/class":    sensor.LocationSchool,
	"at work":            sensor.LocationWork,
	"in clinic/hospital": sensor.LocationHospital,
	"outside":            sensor.LocationOutside,
	"shopping/dining":    sensor.LocationShopping,
	"in bus/train/car":   sensor.LocationTransit,
}

var socialPhrases = map[string]sensor.SocialContext{
	"alone":        sensor.SocialAlone,
	"with friends": sensor.SocialFriends,
	"with family":  sensor.SocialFamily,
	"with peers":   sensor.SocialPeers,
	"in crowd":     sensor.SocialCrowd,
}

var (
	locationByContext = invert(locationPhrases)
	socialByContext   = invert(socialPhrases)
)

func invert[K comparable](m map[string]K) map[K]string {
	inv := make(map[K]string, len(m))
	for phrase, v := range m {
		inv[v] = phrase
	}
	return inv
}

// Pair is the (location context, social context) extracted from an annotation.
// Either half may be nil.
type Pair struct {
	Location *sensor.LocationContext
	Social   *sensor.SocialContext
}

func (p Pair) IsEmpty() bool {
	return p.Location == nil && p.Social == nil
}

// Parser extracts context pairs from encrypted free-text annotations.
type Parser struct {
	cipher crypt.Cipher
}

func NewParser(cipher crypt.Cipher) *Parser {
	return &Parser{
		cipher: cipher,
	}
}

// Parse never fails: an absent annotation, or one that does not follow the
// sentence pattern, yields an empty pair.
func (p *Parser) Parse(annotation *string) Pair {
	if annotation == nil {
		return Pair{}
	}

	sentence := strings.ToLower(strings.TrimSpace(crypt.DecryptOrRaw(p.cipher, *annotation)))
	match := clausePattern.FindStringSubmatch(sentence)
	if match == nil {
		return Pair{}
	}
	return parseClause(strings.TrimRight(strings.TrimSpace(match[1]), ".!"))
}

func parseClause(clause string) Pair {
	var pair Pair
	if loc, ok := locationPhrases[clause]; ok {
		pair.Location = &loc
		return pair
	}
	if soc, ok := socialPhrases[clause]; ok {
		pair.Social = &soc
		return pair
	}

	match := splitPattern.FindStringSubmatch(clause)
	if match == nil {
		return pair
	}
	if loc, ok := locationPhrases[strings.TrimSpace(match[1])]; ok {
		pair.Location = &loc
	}
	if soc, ok := socialPhrases[strings.TrimSpace(match[2])]; ok {
		pair.Social = &soc
	}
	return pair
}

// Compose is the inverse of Parse. It returns nil when both halves are absent.
func (p *Parser) Compose(pair Pair) *string {
	if pair.IsEmpty() {
		return nil
	}

	parts := []string{"I am"}
	if pair.Location != nil {
		if phrase, ok := locationByContext[*pair.Location]; ok {
			parts = append(parts, phrase)
		}
	}
	if pair.Social != nil {
		if phrase, ok := socialByContext[*pair.Social]; ok {
			parts = append(parts, phrase)
		}
	}

	encrypted := p.cipher.Encrypt(strings.Join(parts, " "))
	return &encrypted
}
