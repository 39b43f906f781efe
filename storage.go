package hanfish

// UserWordStorage persists user dictionary words in the
// surface[/TAG][,cost] syntax.
type UserWordStorage interface {
	GetUserWords() ([]string, error) // 登録順に全ての単語を返す
	AddUserWord(string) error        // 単語を検証して登録する。登録済みなら何もしない
	DeleteUserWord(string) error     // 単語を削除する
}
