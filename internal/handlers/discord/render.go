package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
	"github.com/ireh1214/discodebot/internal/models"
	"github.com/ireh1214/discodebot/internal/payout"
)

// Embed colors
const (
	colorBlue  = 0x3498db
	colorGreen = 0x2ecc71
)

// maxButtonsPerRow is the platform's action row limit
const maxButtonsPerRow = 5

// buttonStyle maps the platform-neutral style onto a discordgo style
func buttonStyle(style models.ComponentStyle) discordgo.ButtonStyle {
	switch style {
	case models.StylePrimary:
		return discordgo.PrimaryButton
	case models.StyleSuccess:
		return discordgo.SuccessButton
	case models.StyleDanger:
		return discordgo.DangerButton
	default:
		return discordgo.SecondaryButton
	}
}

// renderButton projects one component onto a platform button
func renderButton(c models.Component) discordgo.Button {
	render := c.Render()

	return discordgo.Button{
		Label:    render.Label,
		Style:    buttonStyle(render.Style),
		CustomID: c.CustomID(),
		Disabled: render.Disabled,
	}
}

// renderRows lays components out into action rows of at most five buttons
func renderRows(components []models.Component) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for start := 0; start < len(components); start += maxButtonsPerRow {
		end := start + maxButtonsPerRow
		if end > len(components) {
			end = len(components)
		}

		row := discordgo.ActionsRow{}
		for _, c := range components[start:end] {
			row.Components = append(row.Components, renderButton(c))
		}

		rows = append(rows, row)
	}

	return rows
}

// renderBoardEmbed builds the recruitment embed: dungeon title, time and
// note, and one field per role listing its signups
func renderBoardEmbed(board *models.SignupBoard) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       board.Dungeon,
		Description: fmt.Sprintf("**시간**: %s\n **내용**: %s", board.TimeText, board.Note),
		Color:       colorBlue,
	}

	for _, slot := range board.Slots {
		// zero width space; Discord rejects empty field values
		value := "​"
		if len(slot.Members) > 0 {
			mentions := make([]string, 0, len(slot.Members))
			for _, m := range slot.Members {
				mentions = append(mentions, m.Mention())
			}
			value = strings.Join(mentions, "\n")
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s (%d)", slot.Role, len(slot.Members)),
			Value:  value,
			Inline: true,
		})
	}

	return embed
}

// renderBoardRows puts the role buttons on the first row and the finalize
// button on its own row below
func renderBoardRows(board *models.SignupBoard) []discordgo.MessageComponent {
	rows := renderRows(board.RoleComponents())
	rows = append(rows, renderRows([]models.Component{board.FinalizeComponent()})...)

	return rows
}

// renderSimpleSplitMessage builds the flat split reply text
func renderSimpleSplitMessage(out *payout.SimpleSplitOutput, partySize int) string {
	costText := "제작비는 성수가 아니라 따로 없음!"
	if out.TotalCost != 0 {
		costText = fmt.Sprintf("제작비는 **%d숲 (%s원)**입니당!", payout.Forest(out.TotalCost), humanize.Comma(out.TotalCost))
	}

	return fmt.Sprintf(
		"분배금 계산 완료!\n\n"+
			"총 **%d명**의 파티원이 약 **%d숲** (%s)의 금액을 분배합니다.\n"+
			"💸 남은 수익: **%s원**\n"+
			"👤 1인당 분배금: **%s원** (= 약 %d숲, **1숲 단위 절사**)\n\n"+
			"%s",
		partySize,
		payout.Forest(out.TotalPrice),
		humanize.Comma(out.TotalPrice),
		humanize.Comma(out.NetProfit),
		humanize.Comma(out.PerPerson),
		payout.Forest(out.PerPerson),
		costText,
	)
}

// renderItemSplitEmbed builds the item sale breakdown embed
func renderItemSplitEmbed(title string, out *payout.ItemSaleSplitOutput, count, partySize int) *discordgo.MessageEmbed {
	weekdayText := "📈 기본 제작비 (80만)"
	if out.DiscountApplied {
		weekdayText = "📉 수요일 할인 적용 (76만)"
	}

	return &discordgo.MessageEmbed{
		Title: title,
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "성수 개수", Value: fmt.Sprintf("%d개", count), Inline: true},
			{Name: "개당 가격", Value: fmt.Sprintf("%s원", humanize.Comma(out.UnitPrice)), Inline: true},
			{Name: "총 판매금액", Value: fmt.Sprintf("%s원", humanize.Comma(out.TotalSale)), Inline: true},
			{Name: "총 제작비", Value: fmt.Sprintf("%s원", humanize.Comma(out.TotalCost)), Inline: true},
			{Name: "수수료", Value: fmt.Sprintf("%s원", humanize.Comma(out.Fee)), Inline: true},
			{Name: "최종 수익", Value: fmt.Sprintf("%s원", humanize.Comma(out.NetProfit)), Inline: true},
			{Name: "인원 수", Value: fmt.Sprintf("%d명", partySize), Inline: true},
			{Name: "1인당 분배금", Value: fmt.Sprintf("%s원", humanize.Comma(out.PerPerson)), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: weekdayText},
	}
}

// renderDrawResult builds the draw result text, with a warning line for
// flagged channels
func renderDrawResult(d *models.ChannelDraw, flavor string) string {
	switch d.Category {
	case models.ChannelProduction:
		return fmt.Sprintf("🎯 **%d채널**이 선정되었습니다!\n⚠️ 이 채널은 생산 채널이네요! 다시 뽑기 가능!", d.Number)
	case models.ChannelFieldRaid:
		return fmt.Sprintf("🎯 **%d채널**이 선정되었습니다!\n⚠️ 필드 레이드 채널입니다! 다시 뽑기 가능!", d.Number)
	default:
		return fmt.Sprintf("🎯 **%d채널**이 선정되었습니다!\n%s", d.Number, flavor)
	}
}

// drawAnimationFrames is the cosmetic "searching" sequence
var drawAnimationFrames = []string{"🐾 점지 중.", "🐾 점지 중..", "🐾 점지 중..."}
