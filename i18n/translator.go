package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "tag" or "status").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "invalid_format":
			return "形式が不正です"
		case "too_small":
			return "小さすぎます"
		case "invalid_enum":
			return "許可されていない値です"
		case "duplicate_key":
			return "キーが重複しています"
		case "discriminator_missing":
			return "判別子がありません"
		case "discriminator_unknown":
			return withTag("未知の判別子です", data)
		case "unexpected_variant":
			return "到達しないはずの分岐に到達しました"
		case "non_exhaustive":
			return "処理されていないケースがあります"
		case "parse_error":
			return "解析エラー"
		case "http_status":
			return withStatus("リクエストが失敗しました", data)
		case "dependency_unavailable":
			return "依存先サービスが利用できません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "invalid_format":
			return "invalid format"
		case "too_small":
			return "too small"
		case "invalid_enum":
			return "value not allowed"
		case "duplicate_key":
			return "duplicate key"
		case "discriminator_missing":
			return "discriminator missing"
		case "discriminator_unknown":
			return withTag("unknown discriminator", data)
		case "unexpected_variant":
			return "unexpected variant"
		case "non_exhaustive":
			return "non-exhaustive cases"
		case "parse_error":
			return "parse error"
		case "http_status":
			return withStatus("Bad Request", data)
		case "dependency_unavailable":
			return "dependency unavailable"
		}
	}
	return code
}

func withTag(msg string, data map[string]string) string {
	if tag := data["tag"]; tag != "" {
		return msg + ": '" + tag + "'"
	}
	return msg
}

func withStatus(msg string, data map[string]string) string {
	if st := data["status"]; st != "" {
		return msg + ": " + st
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
