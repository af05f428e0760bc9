package cv

import (
	"log"
	"regexp"
	"sort"
	"strings"
)

type skillCategory struct {
	name string
	re   *regexp.Regexp
}

// skillCategories are tested in declaration order; the first match wins.
var skillCategories = []skillCategory{
	{"Automation Tools", phraseRegexp(
		`selenium(?: webdriver| grid| ide)?`, `webdriver`, `cypress`, `playwright`, `appium`,
		`testcomplete`, `katalon(?: studio)?`, `robot framework`, `cucumber`, `specflow`,
		`puppeteer`, `webdriverio`, `uft`, `qtp`, `ranorex`, `protractor`, `testng`, `junit`,
		`nunit`, `pytest`, `postman`, `rest assured`, `soapui`, `jmeter`, `gatling`, `k6`,
		`loadrunner`, `tosca`,
	)},
	{"Programming Languages", phraseRegexp(
		`java`, `javascript`, `typescript`, `python`, `c#`, `c\+\+`, `ruby`, `golang`, `go`,
		`kotlin`, `swift`, `php`, `scala`, `sql`, `bash`, `powershell`, `groovy`, `vba`,
		`html`, `css`,
	)},
	{"Test Management Tools", phraseRegexp(
		`jira`, `testrail`, `zephyr(?: scale)?`, `qtest`, `hp alm`, `alm`, `quality center`,
		`xray`, `testlink`, `practitest`, `azure test plans`, `confluence`,
	)},
	{"Cloud & DevOps", phraseRegexp(
		`aws`, `azure`, `gcp`, `google cloud`, `docker`, `kubernetes`, `jenkins`,
		`github actions`, `gitlab(?: ci)?`, `azure devops`, `circleci`, `terraform`,
		`ansible`, `ci cd`, `bamboo`, `teamcity`, `octopus deploy`,
	)},
	{"Testing Concepts", phraseRegexp(
		`manual testing`, `automation testing`, `automated testing`, `regression testing`,
		`functional testing`, `performance testing`, `load testing`, `api testing`,
		`integration testing`, `unit testing`, `system testing`, `uat`,
		`user acceptance testing`, `smoke testing`, `sanity testing`, `exploratory testing`,
		`black box testing`, `white box testing`, `test planning`, `test strategy`,
		`bdd`, `tdd`, `agile`, `scrum`, `kanban`, `sdlc`, `stlc`,
	)},
	{"Other Tools", phraseRegexp(
		`git`, `github`, `bitbucket`, `sql server`, `mysql`, `postgresql`, `mongodb`, `oracle`,
		`visual studio(?: code)?`, `vs code`, `intellij(?: idea)?`, `eclipse`, `linux`,
		`windows`, `excel`, `sharepoint`, `splunk`, `grafana`, `kibana`, `charles proxy`,
		`fiddler`, `browserstack`, `sauce labs`, `lambdatest`, `slack`, `trello`,
	)},
}

func phraseRegexp(phrases ...string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + strings.Join(phrases, "|") + `)$`)
}

var skillSeparators = regexp.MustCompile(`[,;|/•●▪◦·()\[\]:\s]+`)

// skillWindows lists the multi-word window sizes tried before single tokens.
var skillWindows = []int{2, 3}

// tokenizeSkills lowercases text and splits it into tokens longer than one
// character.
func tokenizeSkills(text string) []string {
	parts := skillSeparators.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, ".-")
		if len(p) > 1 {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

func categorize(phrase string) (string, bool) {
	for _, c := range skillCategories {
		if c.re.MatchString(phrase) {
			return c.name, true
		}
	}
	return "", false
}

// ExtractSkills maps each recognised skill phrase to its category. Categories
// with no matches are omitted.
func ExtractSkills(text string) (out map[string][]string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Extract] skills extractor recovered: %v", r)
			out = map[string][]string{}
		}
	}()

	tokens := tokenizeSkills(text)
	found := make(map[string]map[string]struct{})
	add := func(category, phrase string) {
		if found[category] == nil {
			found[category] = make(map[string]struct{})
		}
		found[category][phrase] = struct{}{}
	}

	for i := 0; i < len(tokens); {
		consumed := 0
		for _, size := range skillWindows {
			if i+size > len(tokens) {
				continue
			}
			phrase := strings.Join(tokens[i:i+size], " ")
			if category, ok := categorize(phrase); ok {
				add(category, phrase)
				consumed = size
				break
			}
		}
		if consumed == 0 {
			if category, ok := categorize(tokens[i]); ok {
				add(category, tokens[i])
			}
			consumed = 1
		}
		i += consumed
	}

	out = make(map[string][]string, len(found))
	for category, phrases := range found {
		list := make([]string, 0, len(phrases))
		for p := range phrases {
			list = append(list, titleCase(p))
		}
		sort.Strings(list)
		out[category] = list
	}
	return out
}
