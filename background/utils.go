package background

import (
	"fmt"

	"github.com/bitmark-inc/helpledger/utils"
)

const defaultLanguage = "en"

// NotificationLanguageCode is a mapping between delivery language code and i18n language code
var NotificationLanguageCode = map[string]string{
	"en":      "en",
	"zh-Hant": "zh_tw",
}

// localizedTexts renders the heading and content of a notification in
// every delivery language
func localizedTexts(name string, data map[string]interface{}) (headings, contents map[string]string) {
	headings = make(map[string]string, len(NotificationLanguageCode))
	contents = make(map[string]string, len(NotificationLanguageCode))
	for code, lang := range NotificationLanguageCode {
		headings[code] = utils.Localize(lang, fmt.Sprintf("notification.%s.heading", name), data)
		contents[code] = utils.Localize(lang, fmt.Sprintf("notification.%s.content", name), data)
	}
	return headings, contents
}
