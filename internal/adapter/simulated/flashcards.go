package simulated

import (
	"context"
	"fmt"

	"studymate/internal/domain"
	"studymate/internal/logger"

	"go.uber.org/zap"
)

// FlashcardBatchSize is the number of cards every generation yields.
const FlashcardBatchSize = 5

type cannedCard struct {
	difficulty domain.Difficulty
	question   map[domain.Language]string
	answer     map[domain.Language]string
}

var cannedCards = [FlashcardBatchSize]cannedCard{
	{
		difficulty: domain.DifficultyMedium,
		question: map[domain.Language]string{
			domain.LanguageEnglish: "What is machine learning and how does it differ from traditional programming?",
			domain.LanguageHindi:   "मशीन लर्निंग क्या है और यह पारंपरिक प्रोग्रामिंग से कैसे अलग है?",
		},
		answer: map[domain.Language]string{
			domain.LanguageEnglish: "Machine learning is a subset of AI where computers learn patterns from data without being explicitly programmed. Unlike traditional programming where we write specific instructions, ML algorithms improve their performance through experience.",
			domain.LanguageHindi:   "मशीन लर्निंग AI का एक हिस्सा है जहाँ कंप्यूटर स्पष्ट रूप से प्रोग्राम किए बिना डेटा से पैटर्न सीखते हैं। पारंपरिक प्रोग्रामिंग के विपरीत जहाँ हम विशिष्ट निर्देश लिखते हैं, ML एल्गोरिदम अनुभव के माध्यम से अपने प्रदर्शन में सुधार करते हैं।",
		},
	},
	{
		difficulty: domain.DifficultyEasy,
		question: map[domain.Language]string{
			domain.LanguageEnglish: "Explain the difference between supervised and unsupervised learning.",
			domain.LanguageHindi:   "पर्यवेक्षित और अपर्यवेक्षित शिक्षा के बीच अंतर समझाएं।",
		},
		answer: map[domain.Language]string{
			domain.LanguageEnglish: "Supervised learning uses labeled data to train models (input-output pairs), like classification and regression. Unsupervised learning finds patterns in unlabeled data, like clustering and dimensionality reduction.",
			domain.LanguageHindi:   "पर्यवेक्षित शिक्षा मॉडल को प्रशिक्षित करने के लिए लेबल किए गए डेटा का उपयोग करती है (इनपुट-आउटपुट जोड़े), जैसे वर्गीकरण और प्रतिगमन। अपर्यवेक्षित शिक्षा बिना लेबल वाले डेटा में पैटर्न खोजती है, जैसे क्लस्टरिंग और आयाम कमी।",
		},
	},
	{
		difficulty: domain.DifficultyHard,
		question: map[domain.Language]string{
			domain.LanguageEnglish: "What is overfitting and how can it be prevented?",
			domain.LanguageHindi:   "ओवरफिटिंग क्या है और इसे कैसे रोका जा सकता है?",
		},
		answer: map[domain.Language]string{
			domain.LanguageEnglish: "Overfitting occurs when a model learns training data too well, including noise, leading to poor generalization. Prevention methods include regularization, cross-validation, early stopping, and using more training data.",
			domain.LanguageHindi:   "ओवरफिटिंग तब होता है जब एक मॉडल शोर सहित प्रशिक्षण डेटा को बहुत अच्छी तरह से सीखता है, जिससे खराब सामान्यीकरण होता है। रोकथाम के तरीकों में नियमितीकरण, क्रॉस-वैलिडेशन, जल्दी रोकना, और अधिक प्रशिक्षण डेटा का उपयोग शामिल है।",
		},
	},
	{
		difficulty: domain.DifficultyMedium,
		question: map[domain.Language]string{
			domain.LanguageEnglish: "What are neural networks and how do they work?",
			domain.LanguageHindi:   "न्यूरल नेटवर्क क्या हैं और वे कैसे काम करते हैं?",
		},
		answer: map[domain.Language]string{
			domain.LanguageEnglish: "Neural networks are computational models inspired by biological neural networks. They consist of interconnected nodes (neurons) organized in layers that process information through weighted connections and activation functions.",
			domain.LanguageHindi:   "न्यूरल नेटवर्क जैविक न्यूरल नेटवर्क से प्रेरित कम्प्यूटेशनल मॉडल हैं। वे परतों में व्यवस्थित आपस में जुड़े नोड्स (न्यूरॉन्स) से मिलकर बने होते हैं जो भारित कनेक्शन और सक्रियता फ़ंक्शन के माध्यम से जानकारी को प्रोसेस करते हैं।",
		},
	},
	{
		difficulty: domain.DifficultyEasy,
		question: map[domain.Language]string{
			domain.LanguageEnglish: "Name three common evaluation metrics for classification models.",
			domain.LanguageHindi:   "वर्गीकरण मॉडल के लिए तीन सामान्य मूल्यांकन मैट्रिक्स नाम बताएं।",
		},
		answer: map[domain.Language]string{
			domain.LanguageEnglish: "Three common evaluation metrics are: 1) Accuracy - percentage of correct predictions, 2) Precision - true positives / (true positives + false positives), 3) Recall - true positives / (true positives + false negatives).",
			domain.LanguageHindi:   "तीन सामान्य मूल्यांकन मैट्रिक्स हैं: 1) शुद्धता - सही भविष्यवाणियों का प्रतिशत, 2) प्रिसिजन - सही सकारात्मक / (सही सकारात्मक + गलत सकारात्मक), 3) रिकॉल - सही सकारात्मक / (सही सकारात्मक + गलत नकारात्मक)।",
		},
	},
}

// FlashcardGenerator returns the canned machine-learning deck in the
// requested language.
type FlashcardGenerator struct{}

func NewFlashcardGenerator() *FlashcardGenerator {
	return &FlashcardGenerator{}
}

func (g *FlashcardGenerator) GenerateFlashcards(ctx context.Context, req domain.FlashcardRequest) ([]domain.Flashcard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lang := req.Language
	if lang == "" {
		lang = domain.LanguageEnglish
	}
	if lang != domain.LanguageEnglish && lang != domain.LanguageHindi {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	cards := make([]domain.Flashcard, 0, FlashcardBatchSize)
	for i, c := range cannedCards {
		cards = append(cards, domain.Flashcard{
			ID:         i + 1,
			Question:   c.question[lang],
			Answer:     c.answer[lang],
			Difficulty: c.difficulty,
		})
	}
	logger.Get().Debug("Simulated flashcard batch", zap.String("language", string(lang)), zap.Int("count", len(cards)))
	return cards, nil
}

var _ domain.FlashcardGenerator = (*FlashcardGenerator)(nil)
