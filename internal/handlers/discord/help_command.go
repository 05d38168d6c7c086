package discord

import (
	"github.com/bwmarrin/discordgo"
)

// helpText is the command guide posted by the help command
const helpText = `📌 **사용 가능한 명령어 안내**

### 🐾 슬래시 명령어 (` + "`/`" + ` 로 사용)
- ` + "`/party`" + `: 역할별 참가 버튼이 포함된 파티 모집 메시지를 생성합니다.
    - 던전 / 시간 / 내용 입력 가능 (예: 7-15-9시)
- ` + "`/distribute`" + `: 파티원 멘션 또는 이름으로 분배 체크 버튼을 생성합니다.
- ` + "`/split simple`" + `: 총금액 / 인원수 / 제작비로 기본 분배를 계산합니다.
- ` + "`/split items`" + `: 성수 개수 / 판매 금액 / 인원수 / 수수료 할인율로 성수 분배를 계산합니다.
- ` + "`/greet`" + ` → 퍼리가 인사해줍니다 🐾
- ` + "`/pick 항목1 항목2 ...`" + ` → 무작위 항목 선택
- ` + "`/channel`" + ` → 채널 무작위 추천 + 버튼 재추첨 가능 🎯`

// HelpCommand handles the command guide
type HelpCommand struct {
	BaseCommand
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand() *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{
			Name:        "help",
			Description: "사용 가능한 명령어를 안내합니다.",
		},
	}
}

// Handle processes the help slash command
func (c *HelpCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return RespondWithMessage(s, i, helpText)
}
