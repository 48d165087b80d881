package lexicon

// Built-in vocabularies. These are closed reference lists, not derived data:
// mining quality depends directly on their coverage.

// defaultPrepPhrases lists common English prepositional phrases worth
// surfacing to learners.
var defaultPrepPhrases = []string{
	"according to",
	"ahead of",
	"along with",
	"apart from",
	"as a consequence of",
	"as a matter of fact",
	"as a result of",
	"as far as",
	"as for",
	"as long as",
	"as opposed to",
	"as regards",
	"as soon as",
	"as well as",
	"aside from",
	"at first glance",
	"at least",
	"at most",
	"at odds with",
	"at stake",
	"at the expense of",
	"at the same time",
	"because of",
	"by accident",
	"by all means",
	"by chance",
	"by contrast",
	"by default",
	"by far",
	"by means of",
	"by mistake",
	"by no means",
	"by virtue of",
	"by way of",
	"due to",
	"except for",
	"for example",
	"for instance",
	"for lack of",
	"for the most part",
	"for the sake of",
	"for the time being",
	"from time to time",
	"in accordance with",
	"in addition to",
	"in advance",
	"in any case",
	"in between",
	"in case of",
	"in charge of",
	"in common with",
	"in comparison with",
	"in conjunction with",
	"in connection with",
	"in contrast to",
	"in exchange for",
	"in fact",
	"in favor of",
	"in front of",
	"in general",
	"in light of",
	"in line with",
	"in other words",
	"in particular",
	"in place of",
	"in practice",
	"in principle",
	"in relation to",
	"in response to",
	"in return for",
	"in search of",
	"in spite of",
	"in terms of",
	"in the absence of",
	"in the case of",
	"in the context of",
	"in the course of",
	"in the event of",
	"in the face of",
	"in the light of",
	"in the long run",
	"in the meantime",
	"in the midst of",
	"in the name of",
	"in the wake of",
	"in view of",
	"instead of",
	"on account of",
	"on behalf of",
	"on average",
	"on purpose",
	"on the basis of",
	"on the contrary",
	"on the grounds of",
	"on the other hand",
	"on the verge of",
	"on the whole",
	"on top of",
	"out of date",
	"out of the question",
	"owing to",
	"prior to",
	"regardless of",
	"thanks to",
	"to some extent",
	"to the extent that",
	"under no circumstances",
	"up to date",
	"with a view to",
	"with reference to",
	"with regard to",
	"with respect to",
	"with the exception of",
}

// defaultPhrasalVerbs lists common English phrasal verbs in dictionary form.
// Two-word entries are matched with inflection and separable-usage handling;
// longer entries are matched literally.
var defaultPhrasalVerbs = []string{
	"account for",
	"add up",
	"back down",
	"back up",
	"break down",
	"break into",
	"break out",
	"break up",
	"bring about",
	"bring up",
	"build up",
	"call for",
	"call off",
	"call on",
	"calm down",
	"carry on",
	"carry out",
	"catch up",
	"check in",
	"check out",
	"cheer up",
	"come about",
	"come across",
	"come along",
	"come back",
	"come down",
	"come out",
	"come up",
	"come up with",
	"count on",
	"cut down",
	"cut down on",
	"cut off",
	"cut out",
	"deal with",
	"do without",
	"draw up",
	"drop by",
	"drop off",
	"drop out",
	"end up",
	"fall apart",
	"fall behind",
	"fall through",
	"figure out",
	"fill in",
	"fill out",
	"find out",
	"get across",
	"get along",
	"get around",
	"get away with",
	"get back",
	"get by",
	"get over",
	"get rid of",
	"get through",
	"get together",
	"get up",
	"give away",
	"give back",
	"give in",
	"give off",
	"give out",
	"give rise to",
	"give up",
	"go about",
	"go ahead",
	"go along with",
	"go back",
	"go down",
	"go off",
	"go on",
	"go out",
	"go over",
	"go through",
	"go up",
	"grow up",
	"hand in",
	"hand out",
	"hand over",
	"hang on",
	"hang out",
	"hang up",
	"hold back",
	"hold on",
	"hold up",
	"keep on",
	"keep up",
	"keep up with",
	"kick off",
	"lay off",
	"lay out",
	"leave out",
	"let down",
	"let go",
	"look after",
	"look ahead",
	"look back",
	"look down on",
	"look for",
	"look forward to",
	"look into",
	"look out",
	"look over",
	"look up",
	"look up to",
	"make out",
	"make up",
	"make up for",
	"move on",
	"pass away",
	"pass out",
	"pay back",
	"pay off",
	"phase out",
	"pick out",
	"pick up",
	"point out",
	"pull off",
	"pull out",
	"put aside",
	"put away",
	"put down",
	"put forward",
	"put off",
	"put on",
	"put out",
	"put up",
	"put up with",
	"rely on",
	"result in",
	"rule out",
	"run into",
	"run out",
	"run out of",
	"run over",
	"set aside",
	"set off",
	"set out",
	"set up",
	"settle down",
	"show off",
	"show up",
	"shut down",
	"single out",
	"slow down",
	"sort out",
	"speak up",
	"spell out",
	"stand by",
	"stand for",
	"stand out",
	"stand up for",
	"stem from",
	"take after",
	"take apart",
	"take away",
	"take back",
	"take down",
	"take in",
	"take into account",
	"take off",
	"take on",
	"take out",
	"take over",
	"take part in",
	"take up",
	"think over",
	"throw away",
	"turn around",
	"turn down",
	"turn into",
	"turn off",
	"turn on",
	"turn out",
	"turn over",
	"turn up",
	"use up",
	"wake up",
	"watch out",
	"wear out",
	"wind up",
	"work out",
	"write down",
	"write up",
}

// defaultStopwords is the function-word list used for n-gram boundary
// filtering during statistical and heuristic mining.
var defaultStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
	"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
	"from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
	"having", "he", "he'd", "he'll", "he's", "her", "here", "here's",
	"hers", "herself", "him", "himself", "his", "how", "how's", "i", "i'd",
	"i'll", "i'm", "i've", "if", "in", "into", "is", "isn't", "it", "it's",
	"its", "itself", "let's", "me", "more", "most", "mustn't", "my",
	"myself", "no", "nor", "not", "of", "off", "on", "once", "only", "or",
	"other", "ought", "our", "ours", "ourselves", "out", "over", "own",
	"same", "shan't", "she", "she'd", "she'll", "she's", "should",
	"shouldn't", "so", "some", "such", "than", "that", "that's", "the",
	"their", "theirs", "them", "themselves", "then", "there", "there's",
	"these", "they", "they'd", "they'll", "they're", "they've", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was",
	"wasn't", "we", "we'd", "we'll", "we're", "we've", "were", "weren't",
	"what", "what's", "when", "when's", "where", "where's", "which",
	"while", "who", "who's", "whom", "why", "why's", "with", "won't",
	"would", "wouldn't", "you", "you'd", "you'll", "you're", "you've",
	"your", "yours", "yourself", "yourselves",
}

// defaultNounSuffixes are morphological endings that mark a token as
// noun-like for heuristic noun-phrase mining. Ordered longest first so the
// most specific suffix wins.
var defaultNounSuffixes = []string{
	"ability", "ibility",
	"ization", "isation",
	"ology", "graphy",
	"ation", "ition",
	"ment", "ness", "ance", "ence", "ship", "hood", "tion", "sion",
	"ism", "ist", "dom", "ity", "age", "ery",
	"er", "or",
}

// defaultAdjSuffixes are endings that mark a token as adjective-like.
var defaultAdjSuffixes = []string{
	"ical", "able", "ible", "less", "ious",
	"ive", "ous", "ful", "ish", "ary", "ent", "ant",
	"al", "ic",
}
