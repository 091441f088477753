package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeyURLPlaceholder    = "url_placeholder"
	KeyQualityLabel      = "quality_label"
	KeyAudioFormatLabel  = "audio_format_label"
	KeyVideoFormatLabel  = "video_format_label"
	KeyModeVideo         = "mode_video"
	KeyModeAudio         = "mode_audio"
	KeyDownload          = "download"
	KeyProjectPage       = "project_page"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyWarning           = "warning"
	KeySuccess           = "success"
	KeyError             = "error"
	KeyEnterURL          = "enter_url"
	KeyPathNotSpecified  = "path_not_specified"
	KeyBusy              = "busy"
	KeyDownloadCompleted = "download_completed"
	KeyErrorOccurred     = "error_occurred"
	KeyShowInFolder      = "show_in_folder"
	KeyOpen              = "open"
	KeyOK                = "ok"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyInvalidURL        = "invalid_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown languages are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// LanguageCodes returns the available language codes in a stable order
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.texts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "DeepTube :: Unofficial YouTube Downloader",
		KeyURLLabel:          "YouTube URL:",
		KeyURLPlaceholder:    "Insert the URL of your YouTube video.",
		KeyQualityLabel:      "Video Quality:",
		KeyAudioFormatLabel:  "Audio Format:",
		KeyVideoFormatLabel:  "Video Format:",
		KeyModeVideo:         "Video Download",
		KeyModeAudio:         "Audio only",
		KeyDownload:          "Download",
		KeyProjectPage:       "Project page",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyWarning:           "Warning",
		KeySuccess:           "Success",
		KeyError:             "Error",
		KeyEnterURL:          "Please enter a YouTube link.",
		KeyPathNotSpecified:  "The path to save the file is not specified.",
		KeyBusy:              "A download is already in progress.",
		KeyDownloadCompleted: "The download is complete.",
		KeyErrorOccurred:     "An error occurred: %s",
		KeyShowInFolder:      "Show in folder",
		KeyOpen:              "Open",
		KeyOK:                "OK",
		KeyErrorOpeningFile:  "Error opening file",
		KeyInvalidURL:        "URL must start with http:// or https://",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "DeepTube :: Неофициальный загрузчик YouTube",
		KeyURLLabel:          "Ссылка YouTube:",
		KeyURLPlaceholder:    "Вставьте ссылку на видео YouTube.",
		KeyQualityLabel:      "Качество видео:",
		KeyAudioFormatLabel:  "Формат аудио:",
		KeyVideoFormatLabel:  "Формат видео:",
		KeyModeVideo:         "Скачать видео",
		KeyModeAudio:         "Только аудио",
		KeyDownload:          "Скачать",
		KeyProjectPage:       "Страница проекта",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyWarning:           "Внимание",
		KeySuccess:           "Готово",
		KeyError:             "Ошибка",
		KeyEnterURL:          "Пожалуйста, введите ссылку YouTube.",
		KeyPathNotSpecified:  "Не указан путь для сохранения файла.",
		KeyBusy:              "Загрузка уже выполняется.",
		KeyDownloadCompleted: "Загрузка завершена.",
		KeyErrorOccurred:     "Произошла ошибка: %s",
		KeyShowInFolder:      "Показать в папке",
		KeyOpen:              "Открыть",
		KeyOK:                "ОК",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyInvalidURL:        "URL должен начинаться с http:// или https://",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "DeepTube :: Baixador não oficial do YouTube",
		KeyURLLabel:          "URL do YouTube:",
		KeyURLPlaceholder:    "Insira a URL do seu vídeo do YouTube.",
		KeyQualityLabel:      "Qualidade do vídeo:",
		KeyAudioFormatLabel:  "Formato de áudio:",
		KeyVideoFormatLabel:  "Formato de vídeo:",
		KeyModeVideo:         "Baixar vídeo",
		KeyModeAudio:         "Somente áudio",
		KeyDownload:          "Baixar",
		KeyProjectPage:       "Página do projeto",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyWarning:           "Aviso",
		KeySuccess:           "Sucesso",
		KeyError:             "Erro",
		KeyEnterURL:          "Por favor, insira um link do YouTube.",
		KeyPathNotSpecified:  "O caminho para salvar o arquivo não foi especificado.",
		KeyBusy:              "Um download já está em andamento.",
		KeyDownloadCompleted: "O download foi concluído.",
		KeyErrorOccurred:     "Ocorreu um erro: %s",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyOpen:              "Abrir",
		KeyOK:                "OK",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyInvalidURL:        "A URL deve começar com http:// ou https://",
	}
}
