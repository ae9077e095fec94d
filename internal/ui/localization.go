package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyLoading           = "loading"
	KeyDownloadingFile   = "downloading_file"
	KeyReload            = "reload"
	KeyBack              = "back"
	KeyOpen              = "open"
	KeyOK                = "ok"
	KeyPageLoadFailed    = "page_load_failed"
	KeyDownloadComplete  = "download_complete"
	KeyFileSavedTo       = "file_saved_to"
	KeyDownloadFailed    = "download_failed"
	KeyDownloadFailedMsg = "download_failed_msg"
	KeyPermissionDenied  = "permission_denied"
	KeyPermissionMsg     = "permission_msg"
	KeyUnableToOpen      = "unable_to_open"
	KeyChooseDirectory   = "choose_directory"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

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

	// Final fallback - return key itself
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Panel Kiosk",
		KeyLoading:           "Loading...",
		KeyDownloadingFile:   "Downloading file...",
		KeyReload:            "Reload",
		KeyBack:              "Back",
		KeyOpen:              "Open",
		KeyOK:                "OK",
		KeyPageLoadFailed:    "Could not load the panel page",
		KeyDownloadComplete:  "Download complete",
		KeyFileSavedTo:       "File saved to: %s",
		KeyDownloadFailed:    "Download Failed",
		KeyDownloadFailedMsg: "The file could not be downloaded.",
		KeyPermissionDenied:  "Permission Denied",
		KeyPermissionMsg:     "Storage access is required to save files.",
		KeyUnableToOpen:      "Unable to open file",
		KeyChooseDirectory:   "Choose a folder for downloaded files",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Panel Kiosk",
		KeyLoading:           "Загрузка...",
		KeyDownloadingFile:   "Скачивание файла...",
		KeyReload:            "Обновить",
		KeyBack:              "Назад",
		KeyOpen:              "Открыть",
		KeyOK:                "ОК",
		KeyPageLoadFailed:    "Не удалось загрузить страницу панели",
		KeyDownloadComplete:  "Загрузка завершена",
		KeyFileSavedTo:       "Файл сохранён в: %s",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeyDownloadFailedMsg: "Не удалось скачать файл.",
		KeyPermissionDenied:  "Доступ запрещён",
		KeyPermissionMsg:     "Для сохранения файлов нужен доступ к хранилищу.",
		KeyUnableToOpen:      "Не удалось открыть файл",
		KeyChooseDirectory:   "Выберите папку для скачанных файлов",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Panel Kiosk",
		KeyLoading:           "Carregando...",
		KeyDownloadingFile:   "Baixando arquivo...",
		KeyReload:            "Recarregar",
		KeyBack:              "Voltar",
		KeyOpen:              "Abrir",
		KeyOK:                "OK",
		KeyPageLoadFailed:    "Não foi possível carregar a página do painel",
		KeyDownloadComplete:  "Download concluído",
		KeyFileSavedTo:       "Arquivo salvo em: %s",
		KeyDownloadFailed:    "Falha no download",
		KeyDownloadFailedMsg: "O arquivo não pôde ser baixado.",
		KeyPermissionDenied:  "Permissão negada",
		KeyPermissionMsg:     "Acesso ao armazenamento é necessário para salvar arquivos.",
		KeyUnableToOpen:      "Não foi possível abrir o arquivo",
		KeyChooseDirectory:   "Escolha uma pasta para os arquivos baixados",
	}
}
