// internal/service/sampler.go
package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mizuki1024/eitango-webapp/internal/model"
)

// optionCount は3択（正解1 + 誤答2）の選択肢数です。
const optionCount = 3

// Sampler は出題の誤答選択肢サンプリングとシャッフルを担います。
// 乱数源はコンストラクタで注入でき、テストでは固定シードを渡して
// 再現可能にします。nil の場合は時刻シードで初期化します。
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSampler(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// BuildQuestion は target の3択問題を組み立てます。pool から target
// 自身と表示が重複する候補を除き、誤答2つを非復元抽出します。
// 候補が2つ未満のときは問題を縮退させず ErrInsufficientPool を
// 返します。正解の位置はシャッフル後に再計算されます。
func (s *Sampler) BuildQuestion(target *model.Word, pool []*model.Word) (*model.Question, error) {
	correct := model.Option{Word: target.Word, Meaning: target.JWord}

	seen := map[model.Option]bool{correct: true}
	candidates := make([]model.Option, 0, len(pool))
	for _, w := range pool {
		if w.ID == target.ID {
			continue
		}
		opt := model.Option{Word: w.Word, Meaning: w.JWord}
		if seen[opt] {
			continue
		}
		seen[opt] = true
		candidates = append(candidates, opt)
	}
	if len(candidates) < optionCount-1 {
		return nil, model.ErrInsufficientPool
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	options := []model.Option{correct, candidates[0], candidates[1]}
	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}

	return &model.Question{
		ID:            target.ID,
		Word:          target.Word,
		Options:       options,
		CorrectOption: correctIndex,
	}, nil
}

// BuildChoices は復習テスト用に日本語訳のみの3択を組み立てます。
// corpus は全日付の間違い単語の訳のリストで、answer と重複する
// 候補を除いた上で誤答2つを抽出します。
func (s *Sampler) BuildChoices(answer string, corpus []string) ([]string, error) {
	seen := map[string]bool{answer: true}
	candidates := make([]string, 0, len(corpus))
	for _, c := range corpus {
		if seen[c] {
			continue
		}
		seen[c] = true
		candidates = append(candidates, c)
	}
	if len(candidates) < optionCount-1 {
		return nil, model.ErrInsufficientPool
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	choices := []string{answer, candidates[0], candidates[1]}
	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices, nil
}

// pick は [0, n) の一様乱数を返します。セッションの出題順の
// 選択に使います。
func (s *Sampler) pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
