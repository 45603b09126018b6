package domain

// CommandDefinition is a slash command without options.
type CommandDefinition struct {
	Name        string
	Description string
}

var SetupCommand = CommandDefinition{
	Name:        "setup",
	Description: "このサーバーで転送先にするチャンネルを設定する",
}

const (
	SetupSucceededReply = "✅ このチャンネルを転送先に設定しました（永続化済）"
	SetupFailedReply    = "❌ 転送先の設定に失敗しました"
)
