// Package presentation turns domain values into display strings: localized
// messages, status badges, icons and dates.
package presentation

import (
	"fmt"

	"github.com/riskibarqy/football-center/internal/domain/match"
	"github.com/riskibarqy/football-center/internal/domain/team"
	"golang.org/x/text/language"
)

type Lang int

const (
	LangTR Lang = iota
	LangEN
	langCount
)

var supportedTags = []language.Tag{language.Turkish, language.English}

var langMatcher = language.NewMatcher(supportedTags)

// LangOf picks the closest supported language, Turkish when nothing matches.
func LangOf(tag language.Tag) Lang {
	_, index, confidence := langMatcher.Match(tag)
	if confidence == language.No {
		return LangTR
	}
	return Lang(index)
}

type MessageKey int

const (
	MsgAppTitle MessageKey = iota
	MsgPopularCompetitions
	MsgLoadingCompetitions
	MsgLoadingMatches
	MsgLoadingMatch
	MsgRetry
	MsgUnexpectedFormat
	MsgAPIError
	MsgCompetitionsFailed
	MsgMatchesFailed
	MsgMatchDetailFailed
	MsgMatchNotFound
	MsgNoCompetitions
	MsgNoMatches
	MsgNoPlayers
	MsgDatePlaceholder
	MsgTBA
	MsgVersus
	MsgMatchday
	MsgHomeSide
	MsgAwaySide
	MsgSquadTitle
	MsgScoreDetails
	MsgScoreHalfTime
	MsgScoreFullTime
	MsgScoreExtraTime
	MsgScorePenalties
	MsgTypeCup
	MsgTypeLeague
	MsgTotal
	MsgLive
	MsgFinished
	MsgSectionLive
	MsgSectionScheduled
	MsgSectionFinished
	MsgSectionOther
	MsgGroupGoalkeepers
	MsgGroupDefenders
	MsgGroupMidfielders
	MsgGroupForwards
	MsgGroupOther
	MsgPromptList
	MsgPromptDetail
	MsgPromptError
	MsgUnknownCommand
	MsgNoSuchRow
	MsgVenue
	msgCount
)

var messages = [langCount][msgCount]string{
	LangTR: {
		MsgAppTitle:            "Futbol Merkezi",
		MsgPopularCompetitions: "Popüler Ligler",
		MsgLoadingCompetitions: "Ligler Yükleniyor...",
		MsgLoadingMatches:      "Maçlar Yükleniyor...",
		MsgLoadingMatch:        "Maç Detayları Yükleniyor...",
		MsgRetry:               "Tekrar Dene",
		MsgUnexpectedFormat:    "API yanıtı beklenen formatta değil.",
		MsgAPIError:            "API Hatası: %s",
		MsgCompetitionsFailed:  "Ligler yüklenirken bir hata oluştu.",
		MsgMatchesFailed:       "Maçlar yüklenirken bir hata oluştu.",
		MsgMatchDetailFailed:   "Maç detayları yüklenirken bir hata oluştu.",
		MsgMatchNotFound:       "Maç bulunamadı",
		MsgNoCompetitions:      "Lig bulunamadı",
		MsgNoMatches:           "Bu ligde maç bulunamadı",
		MsgNoPlayers:           "Oyuncu bilgisi bulunamadı",
		MsgDatePlaceholder:     "Tarih belirtilmemiş",
		MsgTBA:                 "TBA",
		MsgVersus:              "VS",
		MsgMatchday:            "Hafta %d",
		MsgHomeSide:            "Ev Sahibi",
		MsgAwaySide:            "Deplasman",
		MsgSquadTitle:          "%s Kadrosu",
		MsgScoreDetails:        "Skor Detayları",
		MsgScoreHalfTime:       "İlk Yarı",
		MsgScoreFullTime:       "Maç Sonucu",
		MsgScoreExtraTime:      "Uzatmalar",
		MsgScorePenalties:      "Penaltılar",
		MsgTypeCup:             "🏆 Turnuva",
		MsgTypeLeague:          "📊 Lig",
		MsgTotal:               "Toplam",
		MsgLive:                "Canlı",
		MsgFinished:            "Biten",
		MsgSectionLive:         "Canlı Maçlar",
		MsgSectionScheduled:    "Planlanmış Maçlar",
		MsgSectionFinished:     "Tamamlanan Maçlar",
		MsgSectionOther:        "Diğer Maçlar",
		MsgGroupGoalkeepers:    "Kaleciler",
		MsgGroupDefenders:      "Defans",
		MsgGroupMidfielders:    "Orta Saha",
		MsgGroupForwards:       "Forvet",
		MsgGroupOther:          "Diğer",
		MsgPromptList:          "Numara: aç, b: geri, q: çıkış",
		MsgPromptDetail:        "b: geri, q: çıkış",
		MsgPromptError:         "r: tekrar dene, b: geri, q: çıkış",
		MsgUnknownCommand:      "Bilinmeyen komut: %s",
		MsgNoSuchRow:           "Geçersiz seçim: %d",
		MsgVenue:               "Stadyum",
	},
	LangEN: {
		MsgAppTitle:            "Football Center",
		MsgPopularCompetitions: "Popular Leagues",
		MsgLoadingCompetitions: "Loading leagues...",
		MsgLoadingMatches:      "Loading matches...",
		MsgLoadingMatch:        "Loading match details...",
		MsgRetry:               "Try again",
		MsgUnexpectedFormat:    "Unexpected API response format.",
		MsgAPIError:            "API error: %s",
		MsgCompetitionsFailed:  "Could not load leagues.",
		MsgMatchesFailed:       "Could not load matches.",
		MsgMatchDetailFailed:   "Could not load match details.",
		MsgMatchNotFound:       "Match not found",
		MsgNoCompetitions:      "No leagues found",
		MsgNoMatches:           "No matches found for this league",
		MsgNoPlayers:           "No players found",
		MsgDatePlaceholder:     "Date not specified",
		MsgTBA:                 "TBA",
		MsgVersus:              "VS",
		MsgMatchday:            "Matchday %d",
		MsgHomeSide:            "Home",
		MsgAwaySide:            "Away",
		MsgSquadTitle:          "%s Squad",
		MsgScoreDetails:        "Score Details",
		MsgScoreHalfTime:       "Half time",
		MsgScoreFullTime:       "Full time",
		MsgScoreExtraTime:      "Extra time",
		MsgScorePenalties:      "Penalties",
		MsgTypeCup:             "🏆 Cup",
		MsgTypeLeague:          "📊 League",
		MsgTotal:               "Total",
		MsgLive:                "Live",
		MsgFinished:            "Finished",
		MsgSectionLive:         "Live Matches",
		MsgSectionScheduled:    "Scheduled Matches",
		MsgSectionFinished:     "Finished Matches",
		MsgSectionOther:        "Other Matches",
		MsgGroupGoalkeepers:    "Goalkeepers",
		MsgGroupDefenders:      "Defence",
		MsgGroupMidfielders:    "Midfield",
		MsgGroupForwards:       "Forwards",
		MsgGroupOther:          "Other",
		MsgPromptList:          "number: open, b: back, q: quit",
		MsgPromptDetail:        "b: back, q: quit",
		MsgPromptError:         "r: retry, b: back, q: quit",
		MsgUnknownCommand:      "Unknown command: %s",
		MsgNoSuchRow:           "No such row: %d",
		MsgVenue:               "Venue",
	},
}

// Catalog resolves display strings for one language.
type Catalog struct {
	lang Lang
}

func NewCatalog(tag language.Tag) *Catalog {
	return &Catalog{lang: LangOf(tag)}
}

func (c *Catalog) Lang() Lang {
	if c == nil {
		return LangTR
	}
	return c.lang
}

// Text returns the message for key, formatted with args when given.
func (c *Catalog) Text(key MessageKey, args ...any) string {
	if key < 0 || key >= msgCount {
		return ""
	}
	msg := messages[c.Lang()][key]
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func (c *Catalog) TypeLabel(kind string) string {
	if kind == "CUP" {
		return c.Text(MsgTypeCup)
	}
	return c.Text(MsgTypeLeague)
}

// TeamName falls back to TBA when the provider has not decided the team yet.
func (c *Catalog) TeamName(name string) string {
	if name == "" {
		return c.Text(MsgTBA)
	}
	return name
}

func (c *Catalog) Matchday(matchday int) string {
	return c.Text(MsgMatchday, matchday)
}

// SectionTitle returns the icon and title of a match status section.
func (c *Catalog) SectionTitle(bucket match.Bucket) (icon, title string) {
	switch bucket {
	case match.BucketLive:
		return "🔴", c.Text(MsgSectionLive)
	case match.BucketScheduled:
		return "📅", c.Text(MsgSectionScheduled)
	case match.BucketFinished:
		return "✅", c.Text(MsgSectionFinished)
	default:
		return "📋", c.Text(MsgSectionOther)
	}
}

// GroupLabel returns the roster section heading, icon first.
func (c *Catalog) GroupLabel(group team.PositionGroup) string {
	var key MessageKey
	switch group {
	case team.GroupGoalkeepers:
		key = MsgGroupGoalkeepers
	case team.GroupDefenders:
		key = MsgGroupDefenders
	case team.GroupMidfielders:
		key = MsgGroupMidfielders
	case team.GroupForwards:
		key = MsgGroupForwards
	default:
		key = MsgGroupOther
	}
	return GroupIcon(group) + " " + c.Text(key)
}
