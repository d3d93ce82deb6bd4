package pos

import "github.com/mortea15/juicer/types"

// NounVerbWhitelist lists the noun and verb tags kept by Whitelist.
var NounVerbWhitelist = map[string]bool{
	"NNP":  true,
	"NN":   true,
	"NNS":  true,
	"NNPS": true,
	"VBN":  true,
	"VBG":  true,
	"VBZ":  true,
	"VBP":  true,
	"VBD":  true,
	"VB":   true,
}

// Whitelist keeps the pairs whose tag is a noun or verb tag, in order.
func Whitelist(tagged []types.TaggedToken) []types.TaggedToken {
	res := make([]types.TaggedToken, 0, len(tagged))
	for _, t := range tagged {
		if NounVerbWhitelist[t.Tag] {
			res = append(res, t)
		}
	}
	return res
}

// TagFiltered tags tokens and applies the whitelist when whitelisted is set.
func TagFiltered(tagger Tagger, tokens []string, whitelisted bool) []types.TaggedToken {
	tagged := tagger.Tag(tokens)
	if whitelisted {
		return Whitelist(tagged)
	}
	return tagged
}
