package emotion

import "github.com/seenimoa/moodgraph/pkg/models"

// NRC-style word lexicon: each word maps to the categories it evokes
// among the eight emotions and the two polarity flags. A compact
// embedded subset tuned for social-media comment vocabulary.
var nrcLexicon = map[string][]string{
	// anger
	"angry":   {models.EmotionAnger, models.PolarityNegative},
	"anger":   {models.EmotionAnger, models.PolarityNegative},
	"furious": {models.EmotionAnger, models.EmotionDisgust, models.PolarityNegative},
	"rage":    {models.EmotionAnger, models.PolarityNegative},
	"hate":    {models.EmotionAnger, models.EmotionDisgust, models.PolarityNegative},
	"scam":    {models.EmotionAnger, models.EmotionDisgust, models.PolarityNegative},
	"fraud":   {models.EmotionAnger, models.EmotionDisgust, models.EmotionFear, models.PolarityNegative},
	"stupid":  {models.EmotionAnger, models.PolarityNegative},
	"idiot":   {models.EmotionAnger, models.EmotionDisgust, models.PolarityNegative},
	"robbed":  {models.EmotionAnger, models.EmotionSadness, models.PolarityNegative},

	// anticipation
	"soon":        {models.EmotionAnticipation},
	"waiting":     {models.EmotionAnticipation},
	"expect":      {models.EmotionAnticipation},
	"expecting":   {models.EmotionAnticipation},
	"hope":        {models.EmotionAnticipation, models.EmotionTrust, models.PolarityPositive},
	"hopeful":     {models.EmotionAnticipation, models.EmotionJoy, models.PolarityPositive},
	"prediction":  {models.EmotionAnticipation},
	"tomorrow":    {models.EmotionAnticipation},
	"moon":        {models.EmotionAnticipation, models.EmotionJoy, models.PolarityPositive},
	"breakout":    {models.EmotionAnticipation, models.EmotionSurprise},
	"watch":       {models.EmotionAnticipation},
	"opportunity": {models.EmotionAnticipation, models.PolarityPositive},

	// disgust
	"disgusting": {models.EmotionDisgust, models.PolarityNegative},
	"gross":      {models.EmotionDisgust, models.PolarityNegative},
	"sick":       {models.EmotionDisgust, models.EmotionSadness, models.PolarityNegative},
	"trash":      {models.EmotionDisgust, models.PolarityNegative},
	"garbage":    {models.EmotionDisgust, models.PolarityNegative},
	"ponzi":      {models.EmotionDisgust, models.EmotionFear, models.PolarityNegative},
	"shady":      {models.EmotionDisgust, models.EmotionFear, models.PolarityNegative},

	// fear
	"scared":    {models.EmotionFear, models.PolarityNegative},
	"scary":     {models.EmotionFear, models.PolarityNegative},
	"afraid":    {models.EmotionFear, models.PolarityNegative},
	"fear":      {models.EmotionFear, models.PolarityNegative},
	"panic":     {models.EmotionFear, models.PolarityNegative},
	"crash":     {models.EmotionFear, models.EmotionSurprise, models.PolarityNegative},
	"crashed":   {models.EmotionFear, models.EmotionSurprise, models.PolarityNegative},
	"risky":     {models.EmotionFear, models.PolarityNegative},
	"danger":    {models.EmotionFear, models.PolarityNegative},
	"worried":   {models.EmotionFear, models.EmotionSadness, models.PolarityNegative},
	"nervous":   {models.EmotionFear, models.EmotionAnticipation, models.PolarityNegative},
	"nightmare": {models.EmotionFear, models.EmotionSadness, models.PolarityNegative},

	// joy
	"happy":     {models.EmotionJoy, models.PolarityPositive},
	"joy":       {models.EmotionJoy, models.PolarityPositive},
	"love":      {models.EmotionJoy, models.EmotionTrust, models.PolarityPositive},
	"loved":     {models.EmotionJoy, models.EmotionTrust, models.PolarityPositive},
	"glad":      {models.EmotionJoy, models.PolarityPositive},
	"excited":   {models.EmotionJoy, models.EmotionAnticipation, models.PolarityPositive},
	"thrilled":  {models.EmotionJoy, models.EmotionSurprise, models.PolarityPositive},
	"awesome":   {models.EmotionJoy, models.PolarityPositive},
	"amazing":   {models.EmotionJoy, models.EmotionSurprise, models.PolarityPositive},
	"fantastic": {models.EmotionJoy, models.PolarityPositive},
	"wonderful": {models.EmotionJoy, models.EmotionTrust, models.PolarityPositive},
	"celebrate": {models.EmotionJoy, models.PolarityPositive},
	"rich":      {models.EmotionJoy, models.EmotionAnticipation, models.PolarityPositive},
	"win":       {models.EmotionJoy, models.PolarityPositive},
	"winning":   {models.EmotionJoy, models.PolarityPositive},

	// sadness
	"sad":        {models.EmotionSadness, models.PolarityNegative},
	"crying":     {models.EmotionSadness, models.PolarityNegative},
	"depressed":  {models.EmotionSadness, models.PolarityNegative},
	"loss":       {models.EmotionSadness, models.PolarityNegative},
	"losses":     {models.EmotionSadness, models.PolarityNegative},
	"lost":       {models.EmotionSadness, models.PolarityNegative},
	"regret":     {models.EmotionSadness, models.PolarityNegative},
	"miserable":  {models.EmotionSadness, models.EmotionDisgust, models.PolarityNegative},
	"hopeless":   {models.EmotionSadness, models.EmotionFear, models.PolarityNegative},
	"ruined":     {models.EmotionSadness, models.EmotionAnger, models.PolarityNegative},
	"devastated": {models.EmotionSadness, models.EmotionFear, models.PolarityNegative},

	// surprise
	"surprised":  {models.EmotionSurprise},
	"shocked":    {models.EmotionSurprise, models.EmotionFear, models.PolarityNegative},
	"sudden":     {models.EmotionSurprise},
	"suddenly":   {models.EmotionSurprise},
	"unexpected": {models.EmotionSurprise},
	"wow":        {models.EmotionSurprise, models.EmotionJoy, models.PolarityPositive},
	"unreal":     {models.EmotionSurprise},
	"crazy":      {models.EmotionSurprise, models.PolarityNegative},
	"insane":     {models.EmotionSurprise, models.PolarityNegative},

	// trust
	"trust":       {models.EmotionTrust, models.PolarityPositive},
	"trusted":     {models.EmotionTrust, models.PolarityPositive},
	"reliable":    {models.EmotionTrust, models.PolarityPositive},
	"secure":      {models.EmotionTrust, models.PolarityPositive},
	"safe":        {models.EmotionTrust, models.PolarityPositive},
	"proven":      {models.EmotionTrust, models.PolarityPositive},
	"honest":      {models.EmotionTrust, models.PolarityPositive},
	"solid":       {models.EmotionTrust, models.PolarityPositive},
	"team":        {models.EmotionTrust},
	"community":   {models.EmotionTrust, models.PolarityPositive},
	"transparent": {models.EmotionTrust, models.PolarityPositive},

	// polarity-only words
	"good":      {models.PolarityPositive},
	"great":     {models.PolarityPositive},
	"best":      {models.PolarityPositive},
	"nice":      {models.PolarityPositive},
	"profit":    {models.PolarityPositive},
	"gains":     {models.PolarityPositive},
	"strong":    {models.PolarityPositive},
	"bad":       {models.PolarityNegative},
	"terrible":  {models.PolarityNegative},
	"awful":     {models.PolarityNegative},
	"horrible":  {models.PolarityNegative},
	"worst":     {models.PolarityNegative},
	"weak":      {models.PolarityNegative},
	"worthless": {models.PolarityNegative},
	"broke":     {models.PolarityNegative},
	"dump":      {models.PolarityNegative},
	"dumped":    {models.PolarityNegative},
}
