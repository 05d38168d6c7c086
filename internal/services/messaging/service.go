package messaging

import (
	"context"
	"errors"

	"github.com/ireh1214/discodebot/internal/draw"
)

// ErrNoTokens is returned when PickToken gets an empty candidate list
var ErrNoTokens = errors.New("token list cannot be empty")

// The bot's voice. Taken verbatim from the community's existing bot; the
// repeated greeting entries are intentional weighting.
var (
	greetings = []string{
		"안녕하세여!",
		"안녕하세여!",
		"안녕하세여!",
		"안녕하세여!",
		"출석했습니다! 🐾",
		"적게 일하고 많이 버시길!",
		"아... 자꾸 부르네...",
		"차렷!!!!!!!!!!!!!! ㅇㅂㅇ",
		"오늘도 정수 코어 드시길 주인님들!",
	}

	distributionIntros = []string{
		"분배금 수령리스트입니다~ 바쁘다 바빠!",
		"이번 분배금 받으실 분들 목록입니다! 'w'",
		"분배금 수령자 리스트입니다! 총대는 수고해줘!",
		"누가누가 분배금 받나 볼까?",
	}

	itemSplitTitles = []string{
		"이번 성수 분배 결과입니다 주인님!",
		"다녀오시느라 고생 많으셨습니다!",
		"어디보자~ 성수 수익 계산 완료입니다!",
		"이번 자 성수 분배는?",
		"컥 귀찮지만 해냄",
	}

	drawFlavors = []string{
		"득템 한번 가보자고!",
		"원트원클 시원하게 갑시다!",
		"오늘은 과연 어떤 일이 일어날까?",
		"사고 없이 무탈하게 다녀오시죠 주인님들 'w'",
	}
)

// service implements the Service interface
type service struct {
	picker draw.Picker
}

// NewService creates a new messaging service
func NewService(cfg *Config) (*service, error) {
	var picker draw.Picker
	if cfg != nil && cfg.Picker != nil {
		picker = cfg.Picker
	} else {
		picker = draw.New(nil)
	}

	return &service{picker: picker}, nil
}

// GetGreeting returns a greeting for the greet command
func (s *service) GetGreeting(ctx context.Context, input *GetGreetingInput) (*GetGreetingOutput, error) {
	return &GetGreetingOutput{Message: s.picker.Pick(greetings)}, nil
}

// GetDistributionIntro returns an intro line for a new payout checklist
func (s *service) GetDistributionIntro(ctx context.Context, input *GetDistributionIntroInput) (*GetDistributionIntroOutput, error) {
	return &GetDistributionIntroOutput{Message: s.picker.Pick(distributionIntros)}, nil
}

// GetItemSplitTitle returns an embed title for an item sale split
func (s *service) GetItemSplitTitle(ctx context.Context, input *GetItemSplitTitleInput) (*GetItemSplitTitleOutput, error) {
	return &GetItemSplitTitleOutput{Title: s.picker.Pick(itemSplitTitles)}, nil
}

// GetDrawFlavor returns a flavor line for a normal channel draw
func (s *service) GetDrawFlavor(ctx context.Context, input *GetDrawFlavorInput) (*GetDrawFlavorOutput, error) {
	return &GetDrawFlavorOutput{Message: s.picker.Pick(drawFlavors)}, nil
}

// PickToken returns one of the given tokens uniformly at random
func (s *service) PickToken(ctx context.Context, input *PickTokenInput) (*PickTokenOutput, error) {
	if len(input.Tokens) == 0 {
		return nil, ErrNoTokens
	}

	return &PickTokenOutput{Token: s.picker.Pick(input.Tokens)}, nil
}
